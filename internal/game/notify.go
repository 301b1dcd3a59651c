package game

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CyberClicker_Go/internal/domain"
)

var titleCaser = cases.Title(language.English)

func (e *Engine) notify(kind domain.NotificationKind, severity domain.Severity, message string, data map[string]interface{}) {
	e.notifier.Notify(domain.Notification{
		Kind:     kind,
		Severity: severity,
		Message:  message,
		Data:     data,
	})
}

// reject publishes a rejection and hands the error back to the caller
func (e *Engine) reject(kind domain.NotificationKind, err error) error {
	e.notify(kind, domain.SeverityWarning, err.Error(), nil)
	return err
}

// displayName falls back to a title-cased id for effects without a name
func displayName(a domain.AntiEffect) string {
	if a.Name != "" {
		return a.Name
	}
	return titleCaser.String(a.ID)
}
