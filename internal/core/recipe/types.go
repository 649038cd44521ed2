package recipe

// RecipeCount 每次生成必須回傳的食譜數量
const RecipeCount = 3

// Recipe 食譜，八個欄位在輸出時一律存在
type Recipe struct {
	Title       string       `json:"title"`
	Servings    string       `json:"servings"`
	PrepTime    string       `json:"prep_time"`
	CookTime    string       `json:"cook_time"`
	Difficulty  string       `json:"difficulty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	Tips        []string     `json:"tips"`
}

// Ingredient 食材，只保留非空欄位
type Ingredient struct {
	Name     string `json:"name,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// Step 步驟
type Step struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// Collection 驗證後的食譜集合，恰好 RecipeCount 筆
type Collection struct {
	Recipes []Recipe `json:"recipes"`
}

// ErrorData 失敗時放在 data 或頂層的錯誤內容
type ErrorData struct {
	Error string `json:"error"`
}

// SubstitutionData 替代食材建議
type SubstitutionData struct {
	Substitutions string `json:"substitutions"`
}

// AnalysisData 食材分析結果
type AnalysisData struct {
	Analysis string `json:"analysis"`
}

// NutritionData 營養資訊
type NutritionData struct {
	Nutrition string `json:"nutrition"`
}

// Result 聊天端點回傳的信封，Type 與 Error 只會有一個
type Result struct {
	Type  Route  `json:"type,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
