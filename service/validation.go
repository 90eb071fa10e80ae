package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tony-42069/biz-acquisition/domain"
)

var dealValidator = newDealValidator()

func newDealValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("industry", func(fl validator.FieldLevel) bool {
		return domain.Industry(fl.Field().String()).Valid()
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		deal := sl.Current().Interface().(domain.NormalizedDeal)
		if deal.DownPaymentPct+deal.SellerNotePct > 100 {
			sl.ReportError(deal.SellerNotePct, "sellerNotePct", "SellerNotePct", "financing", "")
		}
	}, domain.NormalizedDeal{})

	return v
}

// ValidateDeal checks the business rules the engine relies on: positive
// price and revenue, non-zero EBITDA, percentages in range and a financing
// split that does not exceed the asking price.
func ValidateDeal(deal domain.NormalizedDeal) error {
	err := dealValidator.Struct(deal)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating deal: %w", err)
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.add(fe.Field(), fmt.Sprintf("%v", fe.Value()), describeRule(fe))
	}
	return verr
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "ne":
		return "must not be " + fe.Param()
	case "required", "industry":
		return "must be one of " + industryList()
	case "financing":
		return "down payment and seller note together exceed 100% of the asking price"
	}
	return "failed rule " + fe.Tag()
}

func industryList() string {
	names := make([]string, 0, len(domain.Industries))
	for _, i := range domain.Industries {
		names = append(names, string(i))
	}
	return strings.Join(names, ", ")
}
