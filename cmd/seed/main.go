package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/seyirtepe/seyirtepe-backend/config"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/db"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// menuRow is one parsed line of the import workbook.
// Expected columns: Category | Product | Description | Price
type menuRow struct {
	Category    string
	Product     string
	Description string
	Price       float64
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readMenuFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total menu rows to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	imported, err := importMenu(categoryRepo, productRepo, rows)
	if err != nil {
		log.Fatal("Failed to import menu:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", imported)
}

func readMenuFromXLSX(filePath string) ([]menuRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rawRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rawRows) < 2 {
		return nil, fmt.Errorf("workbook has no data rows")
	}

	var rows []menuRow
	for i, raw := range rawRows[1:] { // skip header
		if len(raw) < 4 {
			continue
		}

		category := strings.TrimSpace(raw[0])
		product := strings.TrimSpace(raw[1])
		if category == "" || product == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(raw[3]), 64)
		if err != nil {
			fmt.Printf("Skipping row %d: invalid price %q\n", i+2, raw[3])
			continue
		}

		rows = append(rows, menuRow{
			Category:    category,
			Product:     product,
			Description: strings.TrimSpace(raw[2]),
			Price:       price,
		})
	}

	return rows, nil
}

func importMenu(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, rows []menuRow) (int, error) {
	categoryIDs := make(map[string]uint)
	imported := 0

	for _, row := range rows {
		categoryID, ok := categoryIDs[row.Category]
		if !ok {
			category, err := categoryRepo.FindByName(row.Category)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return imported, err
				}
				category = &model.Category{Name: row.Category, DisplayOrder: len(categoryIDs) + 1}
				if err := categoryRepo.Create(category); err != nil {
					return imported, err
				}
				fmt.Printf("Created category: %s\n", row.Category)
			}
			categoryID = category.ID
			categoryIDs[row.Category] = categoryID
		}

		product := &model.Product{
			Name:        row.Product,
			Description: row.Description,
			Price:       row.Price,
			CategoryID:  categoryID,
		}
		if err := productRepo.Create(product); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}
