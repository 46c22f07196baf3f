package deck

// SlideStyle is a fully resolved style ready for rendering. Every field is
// concrete; rendering performs no further fallback.
type SlideStyle struct {
	PrimaryColor    string     `json:"primaryColor"`
	SecondaryColor  string     `json:"secondaryColor"`
	AccentColor     string     `json:"accentColor"`
	BackgroundColor string     `json:"backgroundColor"`
	TextColor       string     `json:"textColor"`
	TextLightColor  string     `json:"textLightColor"`
	FontFamily      FontFamily `json:"fontFamily"`
	FontSize        FontSizes  `json:"fontSize"`
}

// FontFamily names the heading and body typefaces.
type FontFamily struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// FontSizes are point sizes for each text role.
type FontSizes struct {
	Title      float64 `json:"title"`
	Heading    float64 `json:"heading"`
	Subheading float64 `json:"subheading"`
	Body       float64 `json:"body"`
	Caption    float64 `json:"caption"`
}

// BrandStyle is a partial, user-facing style input. Empty fields fall back
// to the default constant during resolution.
type BrandStyle struct {
	Name       string          `json:"name,omitempty"`
	Colors     BrandColors     `json:"colors"`
	Typography BrandTypography `json:"typography"`
}

// BrandColors are hex color strings (#RRGGBB). Empty means unset.
type BrandColors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	TextLight  string `json:"textLight,omitempty"`
}

// BrandTypography describes fonts and size ramps. Zero means unset.
type BrandTypography struct {
	HeadingFont  string       `json:"headingFont,omitempty"`
	BodyFont     string       `json:"bodyFont,omitempty"`
	HeadingSizes HeadingSizes `json:"headingSizes"`
	BodySizes    BodySizes    `json:"bodySizes"`
	LineHeight   float64      `json:"lineHeight,omitempty"`
}

// HeadingSizes are the h1..h4 point sizes.
type HeadingSizes struct {
	H1 float64 `json:"h1,omitempty"`
	H2 float64 `json:"h2,omitempty"`
	H3 float64 `json:"h3,omitempty"`
	H4 float64 `json:"h4,omitempty"`
}

// BodySizes are the body text point sizes.
type BodySizes struct {
	Large   float64 `json:"large,omitempty"`
	Normal  float64 `json:"normal,omitempty"`
	Small   float64 `json:"small,omitempty"`
	Caption float64 `json:"caption,omitempty"`
}

// DefaultBrandStyle is the named default style constant: a deep-blue
// corporate palette with a Georgia/Arial pairing.
var DefaultBrandStyle = BrandStyle{
	Name: "corporate-default",
	Colors: BrandColors{
		Primary:    "#003366",
		Secondary:  "#0066CC",
		Accent:     "#00A3E0",
		Background: "#FFFFFF",
		Text:       "#333333",
		TextLight:  "#666666",
	},
	Typography: BrandTypography{
		HeadingFont:  "Georgia",
		BodyFont:     "Arial",
		HeadingSizes: HeadingSizes{H1: 44, H2: 32, H3: 24, H4: 20},
		BodySizes:    BodySizes{Large: 18, Normal: 14, Small: 12, Caption: 10},
		LineHeight:   1.4,
	},
}

// ResolveStyle merges a partial brand style over the default constant,
// field by field. Explicit values win; there is no whole-object fallback.
// A nil partial resolves to exactly the default.
func ResolveStyle(partial *BrandStyle) SlideStyle {
	base := DefaultBrandStyle
	if partial == nil {
		partial = &BrandStyle{}
	}
	return SlideStyle{
		PrimaryColor:    pick(partial.Colors.Primary, base.Colors.Primary),
		SecondaryColor:  pick(partial.Colors.Secondary, base.Colors.Secondary),
		AccentColor:     pick(partial.Colors.Accent, base.Colors.Accent),
		BackgroundColor: pick(partial.Colors.Background, base.Colors.Background),
		TextColor:       pick(partial.Colors.Text, base.Colors.Text),
		TextLightColor:  pick(partial.Colors.TextLight, base.Colors.TextLight),
		FontFamily: FontFamily{
			Heading: pick(partial.Typography.HeadingFont, base.Typography.HeadingFont),
			Body:    pick(partial.Typography.BodyFont, base.Typography.BodyFont),
		},
		FontSize: FontSizes{
			Title:      pickSize(partial.Typography.HeadingSizes.H1, base.Typography.HeadingSizes.H1),
			Heading:    pickSize(partial.Typography.HeadingSizes.H2, base.Typography.HeadingSizes.H2),
			Subheading: pickSize(partial.Typography.HeadingSizes.H3, base.Typography.HeadingSizes.H3),
			Body:       pickSize(partial.Typography.BodySizes.Normal, base.Typography.BodySizes.Normal),
			Caption:    pickSize(partial.Typography.BodySizes.Caption, base.Typography.BodySizes.Caption),
		},
	}
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func pickSize(value, fallback float64) float64 {
	if value > 0 {
		return value
	}
	return fallback
}
