package ports

import "context"

// Port: a boundary for the external text extraction service covering
// OCR-of-image and parsed-PDF text. The core only consumes the string
// output; extraction failures surface to the boundary layer.
type TextExtractor interface {
	ExtractText(ctx context.Context, documentURL string) (string, error)
}
