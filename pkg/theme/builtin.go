package theme

func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDefaultTheme(),
		thMidnightTheme(),
		thMonoTheme(),
	} {
		thRegister(t)
	}
}

// thDefaultTheme is the light card look: slate text on white, emerald wave.
func thDefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#f1f5f9",
		Foreground: "#0f172a",
		Dim:        "#94a3b8",
		Accent:     "#6366f1",

		Card:   "#ffffff",
		Border: "#e2e8f0",

		Ring:   "#e2e8f0",
		Sclera: "#f8fafc",
		Pupil:  "#0f172a",
		Lid:    "#ffffff",
		Wave:   "#10b981",

		Button:           "#f1f5f9",
		ButtonText:       "#334155",
		ButtonActive:     "#0f172a",
		ButtonActiveText: "#ffffff",
		BadgeOn:          "#10b981",
		BadgeOff:         "#cbd5e1",

		HelpKey:  "#6366f1",
		HelpDesc: "#64748b",
	}
}

func thMidnightTheme() Theme {
	return Theme{
		Name:       "midnight",
		Background: "#020617",
		Foreground: "#e2e8f0",
		Dim:        "#64748b",
		Accent:     "#818cf8",

		Card:   "#0f172a",
		Border: "#1e293b",

		Ring:   "#334155",
		Sclera: "#e2e8f0",
		Pupil:  "#020617",
		Lid:    "#0f172a",
		Wave:   "#34d399",

		Button:           "#1e293b",
		ButtonText:       "#cbd5e1",
		ButtonActive:     "#818cf8",
		ButtonActiveText: "#020617",
		BadgeOn:          "#34d399",
		BadgeOff:         "#475569",

		HelpKey:  "#818cf8",
		HelpDesc: "#64748b",
	}
}

// thMonoTheme uses grays only and reads well on the Ascii profile.
func thMonoTheme() Theme {
	return Theme{
		Name:       "mono",
		Background: "#000000",
		Foreground: "#ffffff",
		Dim:        "#808080",
		Accent:     "#ffffff",

		Card:   "#000000",
		Border: "#808080",

		Ring:   "#808080",
		Sclera: "#000000",
		Pupil:  "#ffffff",
		Lid:    "#000000",
		Wave:   "#ffffff",

		Button:           "#000000",
		ButtonText:       "#c0c0c0",
		ButtonActive:     "#ffffff",
		ButtonActiveText: "#000000",
		BadgeOn:          "#ffffff",
		BadgeOff:         "#808080",

		HelpKey:  "#ffffff",
		HelpDesc: "#808080",
	}
}
