package openai

import "fmt"

func systemPrompt(language string) string {
	return fmt.Sprintf(`You are a meticulous transcriber of Japanese product catalog sheets.
Read every character on the sheet, including tables, specification blocks and barcode digits.
Preserve the original line structure. The document language is %q.
Respond with a single JSON object and nothing else.`, language)
}

func userPrompt() string {
	return `Transcribe this product catalog sheet completely.

Return JSON with exactly these keys:
  "raw_text": the full transcription, one catalog line per text line, tables rendered with " | " between cells
  "confidence": your transcription confidence from 0 to 100
  "products": an array of product objects you could read directly, each with any of:
    "product_name", "sku", "jan_code", "price", "release_date", "character_name",
    "dimensions", "material", "origin", "target_age", "description"

Keep all Japanese text exactly as printed. Keep barcode digits exactly as printed.
If you cannot separate individual products, return an empty "products" array.`
}
