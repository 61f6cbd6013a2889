package views

import (
	"github.com/fakhama-store/storefront/internal/session"
)

// CheckoutStep is one entry of the checkout stepper.
type CheckoutStep struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

// CheckoutView models the three-step checkout flow.
type CheckoutView struct {
	Step  int            `json:"step"`
	Steps []CheckoutStep `json:"steps"`
}

var checkoutStepLabels = []string{"العنوان", "الدفع", "التأكيد"}

func buildCheckout(snap session.Snapshot) *CheckoutView {
	steps := make([]CheckoutStep, len(checkoutStepLabels))
	for i, label := range checkoutStepLabels {
		number := i + 1
		steps[i] = CheckoutStep{
			Number:    number,
			Label:     label,
			Active:    number == snap.CheckoutStep,
			Completed: number < snap.CheckoutStep,
		}
	}
	return &CheckoutView{
		Step:  snap.CheckoutStep,
		Steps: steps,
	}
}
