package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Matt-OFGC/plato-app-sub007/pkg/application/services"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/domain/entities"
	csvrepo "github.com/Matt-OFGC/plato-app-sub007/pkg/infrastructure/repositories/csv"
	"github.com/Matt-OFGC/plato-app-sub007/pkg/infrastructure/repositories/memory"
)

func main() {
	var (
		companyFlag    = flag.String("company", "", "Company UUID scoping the forecast (required)")
		mode           = flag.String("mode", "reorder", "Pipeline to run: usage, sales, reorder")
		productionFile = flag.String("production", "", "Path to production history CSV file")
		salesFile      = flag.String("sales", "", "Path to sales records CSV file")
		inventoryFile  = flag.String("inventory", "", "Path to stock levels CSV file")
		seasonalFile   = flag.String("seasonal", "", "Path to seasonal trends CSV file")
		catalogFile    = flag.String("catalog", "", "Path to catalog names CSV file")
		startFlag      = flag.String("start", "", "Start date filter (YYYY-MM-DD, optional)")
		endFlag        = flag.String("end", "", "End date filter (YYYY-MM-DD, optional)")
		maxDays        = flag.Int("max-days", services.DefaultReorderWindowDays,
			"Days-until-reorder threshold for reorder mode")
		format = flag.String("format", "text", "Output format: text, json, csv")
	)

	flag.Parse()

	if err := run(runConfig{
		Company:        *companyFlag,
		Mode:           *mode,
		ProductionFile: *productionFile,
		SalesFile:      *salesFile,
		InventoryFile:  *inventoryFile,
		SeasonalFile:   *seasonalFile,
		CatalogFile:    *catalogFile,
		Start:          *startFlag,
		End:            *endFlag,
		MaxDays:        *maxDays,
		Format:         *format,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type runConfig struct {
	Company        string
	Mode           string
	ProductionFile string
	SalesFile      string
	InventoryFile  string
	SeasonalFile   string
	CatalogFile    string
	Start          string
	End            string
	MaxDays        int
	Format         string
}

func run(cfg runConfig) error {
	if cfg.Company == "" {
		return fmt.Errorf("-company is required")
	}
	companyID, err := uuid.Parse(cfg.Company)
	if err != nil {
		return fmt.Errorf("invalid -company: %w", err)
	}

	filters := entities.ForecastingFilters{CompanyID: companyID}
	if cfg.Start != "" {
		start, err := time.Parse("2006-01-02", cfg.Start)
		if err != nil {
			return fmt.Errorf("invalid -start: %w", err)
		}
		filters.StartDate = &start
	}
	if cfg.End != "" {
		end, err := time.Parse("2006-01-02", cfg.End)
		if err != nil {
			return fmt.Errorf("invalid -end: %w", err)
		}
		filters.EndDate = &end
	}

	repos, err := loadRepositories(cfg)
	if err != nil {
		return err
	}

	config := services.DefaultConfig()
	usageService := services.NewIngredientUsageService(
		config, repos.production, repos.inventory, repos.catalog,
	)
	adjuster := services.NewSeasonalAdjuster(repos.seasonal)
	salesService := services.NewSalesForecastService(config, repos.sales, repos.catalog, adjuster)
	reorderService := services.NewReorderService(usageService)

	ctx := context.Background()

	switch cfg.Mode {
	case "usage":
		if cfg.ProductionFile == "" {
			return fmt.Errorf("usage mode requires -production")
		}
		forecasts, err := usageService.ForecastIngredientUsage(ctx, filters)
		if err != nil {
			return err
		}
		return renderIngredientForecasts(os.Stdout, forecasts, cfg.Format)

	case "sales":
		if cfg.SalesFile == "" {
			return fmt.Errorf("sales mode requires -sales")
		}
		forecasts, err := salesService.ForecastSales(ctx, filters)
		if err != nil {
			return err
		}
		return renderSalesForecasts(os.Stdout, forecasts, cfg.Format)

	case "reorder":
		if cfg.ProductionFile == "" {
			return fmt.Errorf("reorder mode requires -production")
		}
		suggestions, err := reorderService.GenerateReorderSuggestions(ctx, companyID, cfg.MaxDays)
		if err != nil {
			return err
		}
		return renderIngredientForecasts(os.Stdout, suggestions, cfg.Format)

	default:
		return fmt.Errorf("unsupported mode: %s (expected usage, sales or reorder)", cfg.Mode)
	}
}

type repositorySet struct {
	production *memory.ProductionHistoryRepository
	sales      *memory.SalesHistoryRepository
	inventory  *memory.InventoryRepository
	seasonal   *memory.SeasonalTrendRepository
	catalog    *memory.CatalogRepository
}

// loadRepositories builds the in-memory collaborators from whichever CSV
// files the invocation supplied.
func loadRepositories(cfg runConfig) (*repositorySet, error) {
	loader := csvrepo.NewLoader()
	repos := &repositorySet{
		production: memory.NewProductionHistoryRepository(),
		sales:      memory.NewSalesHistoryRepository(),
		inventory:  memory.NewInventoryRepository(),
		seasonal:   memory.NewSeasonalTrendRepository(),
		catalog:    memory.NewCatalogRepository(),
	}

	if cfg.ProductionFile != "" {
		records, err := loader.LoadProductionHistory(cfg.ProductionFile)
		if err != nil {
			return nil, err
		}
		if err := repos.production.LoadRecords(records); err != nil {
			return nil, err
		}
	}

	if cfg.SalesFile != "" {
		records, err := loader.LoadSalesRecords(cfg.SalesFile)
		if err != nil {
			return nil, err
		}
		if err := repos.sales.LoadRecords(records); err != nil {
			return nil, err
		}
	}

	if cfg.InventoryFile != "" {
		levels, err := loader.LoadStockLevels(cfg.InventoryFile)
		if err != nil {
			return nil, err
		}
		if err := repos.inventory.LoadStockLevels(levels); err != nil {
			return nil, err
		}
	}

	if cfg.SeasonalFile != "" {
		trends, err := loader.LoadSeasonalTrends(cfg.SeasonalFile)
		if err != nil {
			return nil, err
		}
		if err := repos.seasonal.LoadTrends(trends); err != nil {
			return nil, err
		}
	}

	if cfg.CatalogFile != "" {
		ingredients, recipes, err := loader.LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		for id, name := range ingredients {
			repos.catalog.SetIngredientName(id, name)
		}
		for id, name := range recipes {
			repos.catalog.SetRecipeName(id, name)
		}
	}

	return repos, nil
}
