package iban_test

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/ibancheck/pkg/iban"
)

func ExampleNew() {
	acc, err := iban.New("mc793903645089c80jga29my747")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(acc.Electronic())
	fmt.Println(acc)
	fmt.Println(acc.IsCorrect())
	// Output:
	// MC793903645089C80JGA29MY747
	// MC79 3903645089C80JGA29MY747
	// true
}

func ExampleNew_invalid() {
	_, err := iban.New("GB82-WEST")

	var ibanErr *iban.Error
	if errors.As(err, &ibanErr) {
		fmt.Println(ibanErr.Kind)
		fmt.Println(ibanErr)
	}
	// Output:
	// invalid_characters
	// The IBAN account provided (GB82-WEST) contains non-alphanumeric characters.
}

func ExampleIBAN_GenerateCheckDigits() {
	acc := iban.MustNew("NI52DYVJ256334521639641427629454")

	fmt.Println(acc.CheckDigits(), acc.GenerateCheckDigits(), acc.IsCorrect())
	// Output: 52 50 false
}
