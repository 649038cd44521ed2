package recipe

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"recipe-chatbot/internal/pkg/common"

	"go.uber.org/zap"
)

// 食譜必填欄位
var (
	scalarFields = []string{"title", "servings", "prep_time", "cook_time", "difficulty"}
	listFields   = []string{"ingredients", "steps", "tips"}
)

// ValidateRecipes 檢查解析後的值並正規化為恰好 RecipeCount 筆食譜
func ValidateRecipes(value any) (*Collection, error) {
	root, ok := value.(map[string]any)
	if !ok {
		common.LogError("AI 回應不是物件")
		return nil, &StructureError{Reason: ReasonNotMapping}
	}

	raw, ok := root["recipes"]
	if !ok {
		common.LogError("缺少 recipes 欄位")
		return nil, &StructureError{Reason: ReasonMissingRecipes}
	}

	items, ok := raw.([]any)
	if !ok {
		common.LogError("recipes 不是陣列")
		return nil, &StructureError{Reason: ReasonNotList}
	}

	if len(items) == 0 {
		common.LogError("食譜列表為空")
		return nil, &EmptyError{}
	}

	if len(items) != RecipeCount {
		common.LogError("食譜數量不正確", zap.Int("count", len(items)), zap.Int("expected", RecipeCount))
		return nil, &CountError{Count: len(items)}
	}

	recipes := make([]Recipe, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			common.LogWarn("略過非物件食譜", zap.Int("index", i), zap.Any("item", item))
			continue
		}
		recipes = append(recipes, normalizeRecipe(i, fields))
	}

	if len(recipes) != RecipeCount {
		common.LogError("清理後食譜數量不正確", zap.Int("count", len(recipes)), zap.Int("expected", RecipeCount))
		return nil, &CountError{Count: len(recipes), PostClean: true}
	}

	return &Collection{Recipes: recipes}, nil
}

func normalizeRecipe(index int, fields map[string]any) Recipe {
	for _, name := range scalarFields {
		if _, ok := fields[name]; !ok {
			common.LogWarn("食譜缺少欄位", zap.Int("index", index), zap.String("field", name))
		}
	}
	for _, name := range listFields {
		if _, ok := fields[name]; !ok {
			common.LogWarn("食譜缺少欄位", zap.Int("index", index), zap.String("field", name))
		}
	}

	return Recipe{
		Title:       cleanText(fields["title"]),
		Servings:    cleanText(fields["servings"]),
		PrepTime:    cleanText(fields["prep_time"]),
		CookTime:    cleanText(fields["cook_time"]),
		Difficulty:  cleanText(fields["difficulty"]),
		Ingredients: normalizeIngredients(fields["ingredients"]),
		Steps:       normalizeSteps(fields["steps"]),
		Tips:        normalizeTips(fields["tips"]),
	}
}

func normalizeIngredients(value any) []Ingredient {
	out := []Ingredient{}
	items, _ := value.([]any)
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ing := Ingredient{
			Name:     leafText(fields["name"]),
			Quantity: leafText(fields["quantity"]),
			Unit:     leafText(fields["unit"]),
		}
		if ing == (Ingredient{}) {
			continue
		}
		out = append(out, ing)
	}
	return out
}

func normalizeSteps(value any) []Step {
	out := []Step{}
	items, _ := value.([]any)
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		desc := cleanText(fields["description"])
		if desc == "" {
			continue
		}
		number, ok := positiveInt(fields["step_number"])
		if !ok {
			number = len(out) + 1
		}
		out = append(out, Step{StepNumber: number, Description: desc})
	}
	return out
}

func normalizeTips(value any) []string {
	out := []string{}
	items, _ := value.([]any)
	for _, item := range items {
		if tip := leafText(item); tip != "" {
			out = append(out, tip)
		}
	}
	return out
}

// cleanText 轉成字串、去除前後空白後清理
func cleanText(value any) string {
	return Sanitize(strings.TrimSpace(toString(value)))
}

// leafText 同 cleanText，但 false、0 與空容器視為空值
func leafText(value any) string {
	if !truthy(value) {
		return ""
	}
	return cleanText(value)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// positiveInt 接受正整數或可轉為正整數的字串
func positiveInt(value any) (int, bool) {
	var text string
	switch v := value.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = strings.TrimSpace(v)
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return 0, false
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n, n > 0
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
