package interface_query

import (
	"slices"

	"github.com/sirupsen/logrus"

	"macchanger/domain/mac"
	"macchanger/infrastructure/PAL/link"
)

type Query struct {
	lister   link.Lister
	provider *link.Provider
	logger   logrus.FieldLogger
}

func NewQuery(lister link.Lister, provider *link.Provider, logger logrus.FieldLogger) *Query {
	return &Query{
		lister:   lister,
		provider: provider,
		logger:   logger,
	}
}

func (q *Query) ListInterfaces() ([]string, error) {
	return q.lister.Interfaces()
}

func (q *Query) HasInterface(ifName string) (bool, error) {
	names, err := q.lister.Interfaces()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, ifName), nil
}

// CurrentAddress asks each installed backend in preference order and returns the first
// recognizable address.
func (q *Query) CurrentAddress(ifName string) (mac.Address, error) {
	var tried []string
	for _, backend := range q.provider.Present() {
		tried = append(tried, backend.Tool())
		address, ok := backend.CurrentAddress(ifName)
		if ok {
			q.logger.WithFields(logrus.Fields{
				"interface": ifName,
				"backend":   backend.Tool(),
				"address":   address.String(),
			}).Debug("read current address")
			return address, nil
		}
		q.logger.WithFields(logrus.Fields{
			"interface": ifName,
			"backend":   backend.Tool(),
		}).Debug("no address in backend output")
	}

	return mac.Address{}, NewNotFound(ifName, tried)
}
