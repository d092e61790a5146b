// seed carga un catálogo demo de categorías y productos desde un CSV y lo
// registra a través del Store, dejando el stock inicial como movimientos IN
// para que el libro quede consistente desde el arranque.
//
// Formato CSV (con encabezado): name,sku,price,quantity,category,reorderLevel
// Acepta archivos en UTF-8 o ISO-8859-1 (exports típicos de ERP en español).
//
// Uso: go run ./cmd/seed -csv catalogo.csv [-db inventario.db] [-latin1]
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-lite/internal/store"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

func main() {
	csvPath := flag.String("csv", "catalogo.csv", "ruta del CSV de catálogo")
	dbPath := flag.String("db", "inventario.db", "ruta del archivo SQLite del snapshot")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var reader io.Reader = f
	if *latin1 {
		reader = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	snap, err := sqlite.Open(*dbPath, "", log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir snapshot store: %v\n", err)
		os.Exit(1)
	}
	defer snap.Close()

	st, err := store.New(snap, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar estado: %v\n", err)
		os.Exit(1)
	}

	r := csv.NewReader(reader)
	r.FieldsPerRecord = 6
	header, err := r.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer encabezado: %v\n", err)
		os.Exit(1)
	}
	_ = header

	seen := map[string]bool{}
	var products, movements int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer fila: %v\n", err)
			os.Exit(1)
		}
		name, sku, category := record[0], record[1], record[4]
		price, err := decimal.NewFromString(record[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Precio inválido %q: %v\n", record[2], err)
			os.Exit(1)
		}
		quantity, _ := strconv.Atoi(record[3])
		reorder, _ := strconv.Atoi(record[5])

		if category != "" && !seen[category] {
			if _, err := st.AddCategory(category); err != nil {
				log.Warn().Err(err).Str("category", category).Msg("categoría omitida")
			}
			seen[category] = true
		}

		in := store.ProductInput{
			Name:     name,
			SKU:      sku,
			Price:    price,
			Category: category,
		}
		if reorder > 0 {
			in.ReorderLevel = &reorder
		}
		product, err := st.AddProduct(in)
		if err != nil {
			log.Warn().Err(err).Str("name", name).Str("sku", sku).Msg("producto omitido")
			continue
		}
		products++

		// Stock inicial como movimiento IN: el quantity del producto queda
		// respaldado por el libro y su snapshotQty.
		if quantity > 0 {
			if _, err := st.AddMovement(store.MovementInput{
				ProductID: product.ID,
				Type:      entity.MovementTypeIN,
				Quantity:  quantity,
				Reason:    "Stock inicial",
			}); err != nil {
				log.Warn().Err(err).Str("product", product.ID).Msg("movimiento inicial omitido")
				continue
			}
			movements++
		}
	}

	log.Info().Int("products", products).Int("movements", movements).Msg("catálogo cargado")
}
