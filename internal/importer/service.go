package importer

import (
	"io"

	"github.com/linhares06/expensetracker-app/internal/importer/statement"
)

type Service struct {
	parser Parser
}

func NewService() *Service {
	return &Service{parser: statement.NewParser()}
}

// Spending parses an uploaded statement and keeps only the lines where
// money went out. Credits (salary, refunds) are not expenses and never
// enter the ledger.
func (s *Service) Spending(r io.Reader) ([]statement.Entry, error) {
	entries, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	spending := make([]statement.Entry, 0, len(entries))

	for _, e := range entries {
		if e.Credit {
			continue
		}

		spending = append(spending, e)
	}

	return spending, nil
}
