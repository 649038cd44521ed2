package recipe

import "fmt"

// 各工具的生成參數
const (
	defaultTemperature    = 0.7
	recipeMaxTokens       = 2000
	substitutionMaxTokens = 300
	analysisMaxTokens     = 500
	nutritionMaxTokens    = 500
)

// agentSystemPrompt 說明可用工具，只記錄在啟動日誌
const agentSystemPrompt = `Tu es un agent IA expert en cuisine qui aide les utilisateurs à créer des recettes personnalisées.
Tu as accès à plusieurs outils pour répondre aux demandes des utilisateurs :
1. generate_recipes : Génère des recettes personnalisées
2. analyze_ingredients : Analyse les ingrédients disponibles
3. suggest_substitutions : Suggère des substitutions d'ingrédients
4. calculate_nutrition : Calcule les informations nutritionnelles

Utilise ces outils de manière appropriée pour répondre aux demandes des utilisateurs.`

const recipeSystemPrompt = `Tu es un chef cuisinier expert qui crée des recettes personnalisées.
IMPORTANT:
1. Réponds en JSON valide
2. Évite les caractères spéciaux et apostrophes
3. Utilise des points au lieu des retours à la ligne
4. Utilise uniquement des guillemets doubles
5. Inclus tous les champs requis
6. Ne duplique pas de contenu
7. Sois concis dans les descriptions
8. Génère EXACTEMENT 3 recettes différentes
9. Chaque recette doit être unique et adaptée à la demande

Format JSON requis:
{
  "recipes": [
    {
      "title": "Titre",
      "servings": "Nombre",
      "prep_time": "Minutes",
      "cook_time": "Minutes",
      "difficulty": "Facile/Moyen/Difficile",
      "ingredients": [
        {"name": "Ingrédient", "quantity": "Quantité", "unit": "Unité"}
      ],
      "steps": [
        {"step_number": 1, "description": "Étape"}
      ],
      "tips": ["Conseil"]
    }
  ]
}`

const (
	substitutionSystemPrompt = "Suggère des substitutions possibles pour l'ingrédient fourni."
	analysisSystemPrompt     = "Analyse les ingrédients fournis et suggère des recettes possibles."
	nutritionSystemPrompt    = "Calcule les informations nutritionnelles pour la recette fournie."
)

func recipeUserPrompt(request string) string {
	return fmt.Sprintf("Génère %d recettes différentes pour: %s", RecipeCount, request)
}

func substitutionUserPrompt(ingredient string) string {
	return fmt.Sprintf("Quelles sont les meilleures substitutions pour %s ?", ingredient)
}

func analysisUserPrompt(ingredients string) string {
	return "Analyse ces ingrédients : " + ingredients
}

func nutritionUserPrompt(recipeJSON string) string {
	return "Calcule les informations nutritionnelles pour cette recette : " + recipeJSON
}
