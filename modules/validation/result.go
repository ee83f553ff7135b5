package validation

import (
	"encoding/json"

	"github.com/dmitrymomot/ibancheck/pkg/iban"
)

// Verdict strings returned to clients.
const (
	VerdictOK    = "OK"
	VerdictNotOK = "NOTOK"
)

// Result is the outcome of validating a single account number.
type Result struct {
	IBAN         iban.IBAN
	Correct      bool
	KnownCountry bool
}

// Verdict returns VerdictOK when the IBAN is correct.
func (r Result) Verdict() string {
	if r.Correct {
		return VerdictOK
	}
	return VerdictNotOK
}

// MarshalJSON renders the verdict keyed by the electronic IBAN:
//
//	{"MC793903645089C80JGA29MY747":"OK"}
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{r.IBAN.Electronic(): r.Verdict()})
}
