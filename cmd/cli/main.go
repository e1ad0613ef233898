package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

// bcryptGenerate is swappable in tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "finlogix-cli",
		Short: "FinLogix CLI tool",
		Long:  `A command line interface for interacting with the FinLogix API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinLogix API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FINLOGIX_TOKEN"), "Bearer token (defaults to FINLOGIX_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		loginCmd(),
		summaryCmd(),
		dashboardCmd(),
		transactionsCmd(),
		insightsCmd(),
		forecastCmd(),
		budgetCmd(),
		adviceCmd(),
		hashPasswordCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(map[string]string{
				"email":    email,
				"password": password,
			})
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: timeout}
			resp, err := client.Post(baseURL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			raw, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("login failed (status %d): %s", resp.StatusCode, raw)
			}

			var result struct {
				Token string `json:"token"`
			}
			if err := json.Unmarshal(raw, &result); err != nil {
				return err
			}

			fmt.Println(result.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func summaryCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income/expense totals for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if year > 0 {
				query.Set("year", fmt.Sprint(year))
			}
			if month > 0 {
				query.Set("month", fmt.Sprint(month))
			}
			return getAndPrint("/api/v1/analytics/summary", query)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year (defaults to all time)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (requires --year)")

	return cmd
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the current month dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/dashboard", nil)
		},
	}
}

func transactionsCmd() *cobra.Command {
	var kind, category string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if kind != "" {
				query.Set("kind", kind)
			}
			if category != "" {
				query.Set("category", category)
			}

			raw, err := apiGet("/api/v1/transactions", query)
			if err != nil {
				return err
			}

			var result struct {
				Transactions []struct {
					ID         string `json:"id"`
					Kind       string `json:"kind"`
					Category   string `json:"category"`
					Amount     string `json:"amount"`
					Note       string `json:"note"`
					OccurredAt string `json:"occurred_at"`
				} `json:"transactions"`
			}
			if err := json.Unmarshal(raw, &result); err != nil {
				return err
			}

			for _, tx := range result.Transactions {
				fmt.Printf("%-10s %-14s %12s  %s  %s\n",
					tx.Kind, tx.Category, tx.Amount, tx.OccurredAt[:10], truncate(tx.Note, 40))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind (income or expense)")
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")

	return cmd
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show this month's spending insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/advisor/insights", nil)
		},
	}
}

func forecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast",
		Short: "Show the month-end spending forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/advisor/forecast", nil)
		},
	}
}

func budgetCmd() *cobra.Command {
	var savingsRate string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show suggested category budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if savingsRate != "" {
				query.Set("savings_rate", savingsRate)
			}
			return getAndPrint("/api/v1/advisor/budget", query)
		},
	}

	cmd.Flags().StringVar(&savingsRate, "savings-rate", "", "Target savings rate percentage")

	return cmd
}

func adviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advice",
		Short: "Show personalized saving tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/api/v1/advisor/advice", nil)
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for manual database seeding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func apiGet(path string, query url.Values) ([]byte, error) {
	u := baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, raw)
	}
	return raw, nil
}

func getAndPrint(path string, query url.Values) error {
	raw, err := apiGet(path, query)
	if err != nil {
		return err
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}

	printJSON(result)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
