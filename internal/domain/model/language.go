package model

// FallbackLanguageColor is used for unknown or absent languages.
const FallbackLanguageColor = "#6b7280"

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#239120",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Swift":      "#fa7343",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Vue":        "#41b883",
	"React":      "#61dafb",
	"Angular":    "#dd1b16",
	"Svelte":     "#ff3e00",
	"Flutter":    "#02569B",
}

// LanguageColor returns the badge color for a primary language label.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return FallbackLanguageColor
}
