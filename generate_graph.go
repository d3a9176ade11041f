//go:build ignore

// Renders a sample category chart to graph.png for eyeballing chart styling.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gitlab.com/yelinaung/expense-tracker/internal/expense"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"gitlab.com/yelinaung/expense-tracker/internal/report"
)

func main() {
	sample := []models.Expense{
		{Amount: decimal.RequireFromString("150.50"), Category: models.CategoryFood},
		{Amount: decimal.RequireFromString("130.50"), Category: models.CategoryFood},
		{Amount: decimal.RequireFromString("60.00"), Category: models.CategoryTransport},
		{Amount: decimal.RequireFromString("25.00"), Category: models.CategoryEntertainment},
		{Amount: decimal.RequireFromString("120.00"), Category: models.CategoryUtilities},
	}

	chartData, err := report.GenerateCategoryChart(expense.Aggregate(sample), "January 2026")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("graph.png", chartData, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("wrote graph.png")
}
