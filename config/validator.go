package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"wallet-monitor/pkg/ledger"

	"github.com/go-playground/validator/v10"
)

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "url", "node_scheme":
		return "must be a ws, wss, http or https url"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("must be %s %s", map[string]string{"gt": ">", "gte": ">="}[fe.Tag()], fe.Param())
	case "address":
		return fmt.Sprintf("contains an invalid address %q", fe.Value())
	}
	return "is invalid"
}

func Validate(cfg *Config) error {
	validate := validator.New()

	_ = validate.RegisterValidation("node_scheme", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		switch u.Scheme {
		case "ws", "wss", "http", "https":
			return u.Host != ""
		}
		return false
	})

	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		l := sl.Current().Interface().(Ledger)
		kind := ledger.Kind(l.Kind)
		if !kind.Valid() {
			return
		}
		for i, address := range l.Addresses {
			if address == "" {
				continue
			}
			if err := ledger.ValidateAddress(kind, address); err != nil {
				sl.ReportError(address, fmt.Sprintf("Addresses[%d]", i), "Addresses", "address", "")
			}
		}
	}, Ledger{})

	if err := validate.Struct(cfg); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			return errors.New("invalid config struct")
		}

		var out []string
		for _, fe := range err.(validator.ValidationErrors) {
			out = append(out, fmt.Sprintf("%s - %s", fe.Field(), msgForTag(fe)))
		}

		return errors.New(strings.Join(out, ", "))
	}

	return nil
}
