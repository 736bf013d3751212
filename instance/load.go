package instance

import (
	"fmt"
	"path/filepath"
	"strings"

	"q.log/tableau/model"
)

type Format string

const (
	FormatAuto     Format = ""
	FormatMPS      Format = "mps"
	FormatFixedMPS Format = "fixed-mps"
	FormatCUE      Format = "cue"
)

// Load reads filename in the given format. FormatAuto picks the format from
// the file extension and falls back to free MPS.
func Load(filename string, format Format) (*model.Model, error) {
	if format == FormatAuto {
		format = FormatMPS
		if strings.EqualFold(filepath.Ext(filename), ".cue") {
			format = FormatCUE
		}
	}

	switch format {
	case FormatMPS:
		return NewReader(filename).ConstructModelFromFile()
	case FormatFixedMPS:
		return NewFixedReader(filename).ConstructModelFromFile()
	case FormatCUE:
		return ReadCUE(filename)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
