package importer

import (
	"io"

	"github.com/linhares06/expensetracker-app/internal/importer/statement"
)

type Parser interface {
	Parse(r io.Reader) ([]statement.Entry, error)
}
