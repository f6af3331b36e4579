package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/greenlens/backend/internal/domain"
	"github.com/spf13/cobra"
)

func TestRecommendCmd(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		price     string
		brand     string
		wantIDs   []int
		wantCount int
	}{
		{"electronics", "electronics", domain.FilterAll, "", []int{3, 6}, 2},
		{"price bucket", domain.FilterAll, "0-25", "", []int{4, 6}, 2},
		{"brand", domain.FilterAll, domain.FilterAll, "zen", []int{2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recCategory, recPriceRange, recSustainability, recBrand = tt.category, tt.price, domain.FilterAll, tt.brand
			defer func() {
				recCategory, recPriceRange, recSustainability, recBrand = domain.FilterAll, domain.FilterAll, domain.FilterAll, ""
			}()

			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&out)
			cmd.SetContext(context.Background())

			if err := runRecommend(cmd, nil); err != nil {
				t.Fatalf("runRecommend failed: %v", err)
			}

			var result domain.RecommendationResult
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out.String())
			}
			if result.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", result.Count, tt.wantCount)
			}
			for i, id := range tt.wantIDs {
				if i >= len(result.Products) || result.Products[i].ID != id {
					t.Errorf("Products[%d] id mismatch, want %d (got %+v)", i, id, result.Products)
				}
			}
		})
	}
}

func TestRootCmdWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "recommend"} {
		if !names[want] {
			t.Errorf("root command is missing %q", want)
		}
	}

	flag := recommendCmd.Flags().Lookup("category")
	if flag == nil || flag.DefValue != domain.FilterAll {
		t.Errorf("category flag = %+v, want default %q", flag, domain.FilterAll)
	}
}
