// seed genera el script SQL para poblar el catálogo de marcas y modelos a
// partir del XML de referencia Marcas.xml (exportado del padrón vehicular).
//
// Uso: go run ./cmd/seed [ruta/Marcas.xml]
// Por defecto busca Marcas.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/005_seed_catalog.sql
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type brand struct {
	code, name string
	models     []model
}

type model struct {
	code, name string
}

func main() {
	xmlPath := "Marcas.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := doc.ReadFromFile(xmlPath); err != nil {
		fmt.Fprintf(os.Stderr, "Leer XML: %v\n", err)
		os.Exit(1)
	}

	root := doc.SelectElement("catalogo")
	if root == nil {
		fmt.Fprintln(os.Stderr, "XML inválido: falta el elemento <catalogo>")
		os.Exit(1)
	}

	var brands []brand
	for _, m := range root.SelectElements("marca") {
		b := brand{
			code: strings.TrimSpace(m.SelectAttrValue("codigo", "")),
			name: strings.TrimSpace(m.SelectAttrValue("nombre", "")),
		}
		if b.code == "" || b.name == "" {
			continue
		}
		for _, mod := range m.SelectElements("modelo") {
			md := model{
				code: strings.TrimSpace(mod.SelectAttrValue("codigo", "")),
				name: strings.TrimSpace(mod.SelectAttrValue("nombre", "")),
			}
			if md.code == "" || md.name == "" {
				continue
			}
			b.models = append(b.models, md)
		}
		brands = append(brands, b)
	}

	// Orden estable por código de marca
	sort.Slice(brands, func(i, j int) bool { return brands[i].code < brands[j].code })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "005_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de marcas y modelos de vehículos\n")
	out.WriteString("-- Generado desde Marcas.xml\n\n")

	out.WriteString("-- 1. Marcas\n")
	out.WriteString("INSERT INTO catalog_brands (code, name) VALUES\n")
	for i, b := range brands {
		sep := ","
		if i == len(brands)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s')%s\n", b.code, escapeSQL(b.name), sep)
	}
	out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name;\n\n")

	totalModels := 0
	out.WriteString("-- 2. Modelos\n")
	for _, b := range brands {
		for _, md := range b.models {
			fmt.Fprintf(out, "INSERT INTO catalog_models (brand_code, code, name)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s')\n", b.code, md.code, escapeSQL(md.name))
			out.WriteString("ON CONFLICT (brand_code, code) DO UPDATE SET name = EXCLUDED.name;\n")
			totalModels++
		}
	}

	fmt.Printf("Generado %s: %d marcas, %d modelos\n", outPath, len(brands), totalModels)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
