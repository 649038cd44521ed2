package recipe

import "strings"

// Route 請求的處理路徑
type Route string

const (
	RouteRecipes       Route = "recipes"
	RouteSubstitutions Route = "substitutions"
	RouteAnalysis      Route = "analysis"
)

// 觸發食譜生成的關鍵字（小寫比對）
var recipeKeywords = []string{"recette", "cuisiner", "préparer", "faire", "ingrédients"}

const substitutionKeyword = "substitution"

// Decision 分類結果與對應工具的參數
type Decision struct {
	Route Route
	// Prompt 食譜生成使用的原始輸入
	Prompt string
	// Ingredient 需要替代的食材
	Ingredient string
	// Ingredients 要分析的食材清單
	Ingredients []string
}

// Classify 依關鍵字決定路徑，依序比對，先符合者優先
func Classify(input string) Decision {
	lower := strings.ToLower(input)

	for _, keyword := range recipeKeywords {
		if strings.Contains(lower, keyword) {
			return Decision{Route: RouteRecipes, Prompt: input}
		}
	}

	if strings.Contains(lower, substitutionKeyword) {
		ingredient := ""
		if i := lastIndexFold(input, substitutionKeyword); i >= 0 {
			ingredient = strings.TrimSpace(input[i+len(substitutionKeyword):])
		}
		return Decision{Route: RouteSubstitutions, Ingredient: ingredient}
	}

	return Decision{Route: RouteAnalysis, Ingredients: []string{input}}
}

// lastIndexFold 不分大小寫（僅 ASCII）找出 substr 最後出現的位置
func lastIndexFold(s, substr string) int {
	for i := len(s) - len(substr); i >= 0; i-- {
		if asciiEqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func asciiEqualFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toLowerASCII(s[i]) != toLowerASCII(t[i]) {
			return false
		}
	}
	return true
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
