package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

var validate = validator.New()

// Validate validates the encoder configuration.
func (e *Encoder) Validate() error {
	if e == nil {
		return errors.NewDet(class.ConfigValueNil, "nil encoder config")
	}
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewDet(class.ConfigValueInvalid, "validating encoder config failed").WithDetail(err.Error())
	}

	var multi errors.MultiError
	for _, fieldErr := range validationErrors {
		multi = append(multi, errors.NewDetf(class.ConfigValueInvalid, "invalid encoder config field: '%s'", fieldErr.Namespace()).
			WithDetailf("the value: '%v' doesn't satisfy the '%s' constraint", fieldErr.Value(), fieldErr.Tag()))
	}
	return multi.ErrorOrNil()
}
