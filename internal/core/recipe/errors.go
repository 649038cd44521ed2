package recipe

import (
	"errors"
	"fmt"

	"recipe-chatbot/internal/core/ai/service"
)

// 錯誤種類，只出現在日誌
const (
	KindFormat    = "format"
	KindParse     = "parse"
	KindStructure = "structure"
	KindEmpty     = "empty"
	KindCount     = "count"
	KindUpstream  = "upstream"
	KindUnknown   = "unknown"
)

// StructureError 的原因
const (
	ReasonNotMapping     = "not a mapping"
	ReasonMissingRecipes = "missing recipes key"
	ReasonNotList        = "recipes not a list"
)

// FormatError 回應看起來不是 JSON 物件
type FormatError struct {
	Text string
}

func (e *FormatError) Error() string {
	return "Format de réponse invalide"
}

// ParseError JSON 語法錯誤，保留位置與前後文
type ParseError struct {
	Offset   int64 // 位元組
	Position int   // 字元
	Context  string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Erreur de parsing JSON: %v (position %d)", e.Err, e.Position)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructureError 結構不符
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "Structure de réponse invalide"
}

// EmptyError 食譜列表為空
type EmptyError struct{}

func (e *EmptyError) Error() string {
	return "Aucune recette générée"
}

// CountError 食譜數量不是 RecipeCount
type CountError struct {
	Count     int
	PostClean bool
}

func (e *CountError) Error() string {
	return fmt.Sprintf("Le nombre de recettes doit être exactement %d (reçu: %d)", RecipeCount, e.Count)
}

// Kind 回傳錯誤種類
func Kind(err error) string {
	var (
		formatErr    *FormatError
		parseErr     *ParseError
		structureErr *StructureError
		emptyErr     *EmptyError
		countErr     *CountError
		upstreamErr  *service.UpstreamError
	)
	switch {
	case errors.As(err, &formatErr):
		return KindFormat
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &structureErr):
		return KindStructure
	case errors.As(err, &emptyErr):
		return KindEmpty
	case errors.As(err, &countErr):
		return KindCount
	case errors.As(err, &upstreamErr):
		return KindUpstream
	}
	return KindUnknown
}
