package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Decision
	}{
		{
			name:  "recipe keyword",
			input: "Donne-moi une recette de pâtes",
			want:  Decision{Route: RouteRecipes, Prompt: "Donne-moi une recette de pâtes"},
		},
		{
			name:  "substitution",
			input: "Quelle substitution pour le beurre",
			want:  Decision{Route: RouteSubstitutions, Ingredient: "pour le beurre"},
		},
		{
			name:  "analysis fallback",
			input: "tomate, basilic, mozzarella",
			want:  Decision{Route: RouteAnalysis, Ingredients: []string{"tomate, basilic, mozzarella"}},
		},
		{
			name:  "uppercase accented keyword",
			input: "PRÉPARER un dîner",
			want:  Decision{Route: RouteRecipes, Prompt: "PRÉPARER un dîner"},
		},
		{
			name:  "recipe wins over substitution",
			input: "substitution du beurre dans une recette",
			want:  Decision{Route: RouteRecipes, Prompt: "substitution du beurre dans une recette"},
		},
		{
			name:  "last occurrence case insensitive",
			input: "Substitution ? SUBSTITUTION  crème fraîche ",
			want:  Decision{Route: RouteSubstitutions, Ingredient: "crème fraîche"},
		},
		{
			name:  "plural keeps trailing letter",
			input: "des substitutions au lait",
			want:  Decision{Route: RouteSubstitutions, Ingredient: "s au lait"},
		},
		{
			name:  "nothing after keyword",
			input: "substitution",
			want:  Decision{Route: RouteSubstitutions, Ingredient: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestLastIndexFold(t *testing.T) {
	assert.Equal(t, 0, lastIndexFold("abc", "ABC"))
	assert.Equal(t, 4, lastIndexFold("abc abc", "Abc"))
	assert.Equal(t, 2, lastIndexFold("éSUBx", "sub"))
	assert.Equal(t, -1, lastIndexFold("ab", "abc"))
	assert.Equal(t, -1, lastIndexFold("xyz", "a"))
}
