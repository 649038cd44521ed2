package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/pkg/common"

	"go.uber.org/zap"
)

// 工具名稱
const (
	ToolGenerateRecipes      = "generate_recipes"
	ToolAnalyzeIngredients   = "analyze_ingredients"
	ToolSuggestSubstitutions = "suggest_substitutions"
	ToolCalculateNutrition   = "calculate_nutrition"
)

var routeTools = map[Route]string{
	RouteRecipes:       ToolGenerateRecipes,
	RouteSubstitutions: ToolSuggestSubstitutions,
	RouteAnalysis:      ToolAnalyzeIngredients,
}

// Completer 補全服務，*service.Service 實作此介面
type Completer interface {
	Complete(ctx context.Context, operation string, req *provider.Request) (string, error)
}

// ToolInput 工具參數，各工具只讀取自己需要的欄位
type ToolInput struct {
	Prompt      string
	Ingredient  string
	Ingredients []string
	Recipe      any
}

// Tool 執行一次工具呼叫，回傳可直接序列化的資料；失敗時為 ErrorData
type Tool func(ctx context.Context, in ToolInput) any

// Agent 食譜代理，工具表在建立後不再變動
type Agent struct {
	completer Completer
	tools     map[string]Tool
}

// NewAgent 建立代理並註冊工具
func NewAgent(completer Completer) *Agent {
	a := &Agent{completer: completer}
	a.tools = map[string]Tool{
		ToolGenerateRecipes: func(ctx context.Context, in ToolInput) any {
			data, err := a.GenerateRecipes(ctx, in.Prompt)
			return toolResult(ToolGenerateRecipes, in.Prompt, data, err)
		},
		ToolSuggestSubstitutions: func(ctx context.Context, in ToolInput) any {
			data, err := a.SuggestSubstitutions(ctx, in.Ingredient)
			return toolResult(ToolSuggestSubstitutions, in.Ingredient, data, err)
		},
		ToolAnalyzeIngredients: func(ctx context.Context, in ToolInput) any {
			data, err := a.AnalyzeIngredients(ctx, in.Ingredients)
			return toolResult(ToolAnalyzeIngredients, strings.Join(in.Ingredients, ", "), data, err)
		},
		ToolCalculateNutrition: func(ctx context.Context, in ToolInput) any {
			data, err := a.CalculateNutrition(ctx, in.Recipe)
			return toolResult(ToolCalculateNutrition, "", data, err)
		},
	}

	common.LogDebug("食譜代理已建立",
		zap.Strings("tools", a.Tools()),
		zap.String("system_prompt", agentSystemPrompt),
	)
	return a
}

// toolResult 成功時回傳資料本身，失敗時記錄錯誤種類並轉為 ErrorData
func toolResult(tool, input string, data any, err error) any {
	if err != nil {
		common.LogError("工具執行失敗",
			zap.String("tool", tool),
			zap.String("input", input),
			zap.String("error_kind", Kind(err)),
			zap.Error(err),
		)
		return ErrorData{Error: err.Error()}
	}
	return data
}

// Tools 已註冊的工具名稱（排序後）
func (a *Agent) Tools() []string {
	names := make([]string, 0, len(a.tools))
	for name := range a.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call 以名稱呼叫工具
func (a *Agent) Call(ctx context.Context, name string, in ToolInput) (any, error) {
	tool, ok := a.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	return tool(ctx, in), nil
}

// Process 分類使用者輸入並呼叫對應工具
func (a *Agent) Process(ctx context.Context, input string) Result {
	decision := Classify(input)
	tool := routeTools[decision.Route]

	common.LogDebug("處理使用者請求",
		zap.String("input", input),
		zap.String("route", string(decision.Route)),
		zap.String("tool", tool),
	)

	data, err := a.Call(ctx, tool, ToolInput{
		Prompt:      decision.Prompt,
		Ingredient:  decision.Ingredient,
		Ingredients: decision.Ingredients,
	})
	if err != nil {
		common.LogError("請求處理失敗", zap.String("route", string(decision.Route)), zap.Error(err))
		return Result{Error: err.Error()}
	}
	return Result{Type: decision.Route, Data: data}
}

// GenerateRecipes 生成並驗證恰好 RecipeCount 筆食譜
func (a *Agent) GenerateRecipes(ctx context.Context, prompt string) (*Collection, error) {
	common.LogDebug("生成食譜", zap.String("prompt", prompt))

	text, err := a.completer.Complete(ctx, ToolGenerateRecipes, &provider.Request{
		Messages: []provider.Message{
			provider.System(recipeSystemPrompt),
			provider.User(recipeUserPrompt(prompt)),
		},
		MaxTokens:   recipeMaxTokens,
		Temperature: defaultTemperature,
		JSONObject:  true,
	})
	if err != nil {
		return nil, err
	}

	value, err := ParseResponse(text)
	if err != nil {
		return nil, err
	}
	return ValidateRecipes(value)
}

// SuggestSubstitutions 建議替代食材
func (a *Agent) SuggestSubstitutions(ctx context.Context, ingredient string) (*SubstitutionData, error) {
	common.LogDebug("建議替代食材", zap.String("ingredient", ingredient))

	text, err := a.completer.Complete(ctx, ToolSuggestSubstitutions, &provider.Request{
		Messages: []provider.Message{
			provider.System(substitutionSystemPrompt),
			provider.User(substitutionUserPrompt(ingredient)),
		},
		MaxTokens:   substitutionMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, err
	}
	return &SubstitutionData{Substitutions: text}, nil
}

// AnalyzeIngredients 分析食材並建議可能的料理
func (a *Agent) AnalyzeIngredients(ctx context.Context, ingredients []string) (*AnalysisData, error) {
	common.LogDebug("分析食材", zap.Strings("ingredients", ingredients))

	text, err := a.completer.Complete(ctx, ToolAnalyzeIngredients, &provider.Request{
		Messages: []provider.Message{
			provider.System(analysisSystemPrompt),
			provider.User(analysisUserPrompt(strings.Join(ingredients, ", "))),
		},
		MaxTokens:   analysisMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, err
	}
	return &AnalysisData{Analysis: text}, nil
}

// CalculateNutrition 計算食譜的營養資訊
func (a *Agent) CalculateNutrition(ctx context.Context, recipe any) (*NutritionData, error) {
	payload, err := common.ToJSON(recipe)
	if err != nil {
		return nil, fmt.Errorf("encode recipe: %w", err)
	}
	common.LogDebug("計算營養資訊", zap.String("recipe", payload))

	text, err := a.completer.Complete(ctx, ToolCalculateNutrition, &provider.Request{
		Messages: []provider.Message{
			provider.System(nutritionSystemPrompt),
			provider.User(nutritionUserPrompt(payload)),
		},
		MaxTokens:   nutritionMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return nil, err
	}
	return &NutritionData{Nutrition: text}, nil
}
