package service_test

import (
	"reflect"
	"testing"

	"github.com/skalski/macroquest/internal/service"
)

func TestAnalyzeIngredientsFlagsAndScore(t *testing.T) {
	t.Parallel()

	report := service.AnalyzeIngredients("Water, Red 40, Titanium Dioxide (E171)")
	if len(report.RedFlags) != 2 {
		t.Fatalf("expected 2 red flags, got %d: %+v", len(report.RedFlags), report.RedFlags)
	}
	if report.RedFlags[0].Name != "Red 40" || report.RedFlags[1].Name != "Titanium Dioxide" {
		t.Fatalf("unexpected flags: %+v", report.RedFlags)
	}
	if report.Score != 70 {
		t.Fatalf("expected score 70, got %d", report.Score)
	}
}

func TestAnalyzeIngredientsParentheticalAliasDoesNotDuplicate(t *testing.T) {
	t.Parallel()

	// E171 is an alias of Titanium Dioxide; the parenthetical must not
	// produce a second flag for the same catalog entry.
	report := service.AnalyzeIngredients("Titanium Dioxide (E171)")
	if len(report.RedFlags) != 1 {
		t.Fatalf("expected 1 red flag, got %d: %+v", len(report.RedFlags), report.RedFlags)
	}
	if report.RedFlags[0].FoundAs != "titanium dioxide" {
		t.Fatalf("expected first match to win, found as %q", report.RedFlags[0].FoundAs)
	}
}

func TestAnalyzeIngredientsAliasOnly(t *testing.T) {
	t.Parallel()

	report := service.AnalyzeIngredients("enriched flour, tartrazine, salt")
	if len(report.RedFlags) != 1 || report.RedFlags[0].Name != "Yellow 5" {
		t.Fatalf("expected Yellow 5 via tartrazine alias, got %+v", report.RedFlags)
	}
	if report.RedFlags[0].FoundAs != "tartrazine" {
		t.Fatalf("expected foundAs tartrazine, got %q", report.RedFlags[0].FoundAs)
	}
}

func TestAnalyzeIngredientsStripsBoilerplate(t *testing.T) {
	t.Parallel()

	report := service.AnalyzeIngredients("INGREDIENTS: water, sugar. Contains less than 2% of: BHT, natural flavor")
	if len(report.RedFlags) != 1 || report.RedFlags[0].Name != "BHT" {
		t.Fatalf("expected BHT flag, got %+v", report.RedFlags)
	}
	for _, ing := range report.AllIngredients {
		if ing == "ingredients" || ing == "contains less than 2% of" {
			t.Fatalf("boilerplate leaked into ingredient list: %v", report.AllIngredients)
		}
	}
}

func TestAnalyzeIngredientsEmptyInput(t *testing.T) {
	t.Parallel()

	report := service.AnalyzeIngredients("")
	if report.Score != 100 {
		t.Fatalf("expected score 100 for empty input, got %d", report.Score)
	}
	if len(report.RedFlags) != 0 || len(report.AllIngredients) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestAnalyzeIngredientsScoreFloor(t *testing.T) {
	t.Parallel()

	report := service.AnalyzeIngredients(
		"red 40, yellow 5, yellow 6, red 3, blue 1, titanium dioxide, potassium bromate, bvo")
	if len(report.RedFlags) != 8 {
		t.Fatalf("expected 8 flags, got %d", len(report.RedFlags))
	}
	if report.Score != 0 {
		t.Fatalf("expected score floored at 0, got %d", report.Score)
	}
}

func TestAnalyzeIngredientsIdempotent(t *testing.T) {
	t.Parallel()

	input := "Water, Sugar, Red 40 (Allura Red), BHA"
	first := service.AnalyzeIngredients(input)
	second := service.AnalyzeIngredients(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports, got %+v vs %+v", first, second)
	}
}

func TestAnalyzeIngredientsDisplayListHidesShortFragments(t *testing.T) {
	t.Parallel()

	report := service.AnalyzeIngredients("salt, e5, ab, water")
	for _, ing := range report.AllIngredients {
		if len(ing) <= 2 {
			t.Fatalf("short fragment %q leaked into display list", ing)
		}
	}
}
