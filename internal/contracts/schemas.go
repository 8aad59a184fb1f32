package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Схемы ответов properties API, по одной на ресурс
//
//go:embed schemas/*.json
var schemasFS embed.FS

const (
	PropertyList      = "PropertyList"
	PropertyWithOwner = "PropertyWithOwner"
)

// Базовый URL нужен только для разрешения $ref между файлами
const schemaBaseURL = "https://realestate-front.local/"

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()

	// Сначала добавляем все файлы как ресурсы, чтобы $ref "property.json" разрешался
	var files []string
	err := fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		file, err := schemasFS.Open(p)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(schemaBaseURL+p, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", p, err)
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	for _, p := range files {
		schema, err := compiler.Compile(schemaBaseURL + p)
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", p, err)
		}
		compiledSchemas[keyFromPath(p)] = schema
	}
}

// keyFromPath преобразует "schemas/property-with-owner.json" в "PropertyWithOwner"
func keyFromPath(p string) string {
	name := strings.TrimSuffix(path.Base(p), ".json")

	caser := cases.Title(language.English)
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		b.WriteString(caser.String(part))
	}
	return b.String()
}

// Validate проверяет тело ответа по схеме с заданным ключом
func Validate(key string, body []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("response body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
