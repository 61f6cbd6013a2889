package views

// AuthView models the sign-in screen.
type AuthView struct {
	Headline     string `json:"headline"`
	Subtitle     string `json:"subtitle"`
	SeasonBadge  string `json:"seasonBadge"`
	GuestEnabled bool   `json:"guestEnabled"`
}

func buildAuth() *AuthView {
	return &AuthView{
		Headline:    "التميز هو فخامة",
		Subtitle:    "انضم لأكثر من 100,000 عميل يثقون في فخامة لتلبية احتياجاتهم من المنتجات الراقية.",
		SeasonBadge: "جديد الموسم 2024 ✨",
		GuestEnabled: true,
	}
}
