package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ShippingMethod holds the merchant settings of the provider's shipping method.
type ShippingMethod struct {
	MethodID  string `yaml:"method_id" env:"SHIPPING_METHOD_ID" env-default:"brenger" validate:"required"`
	StoreName string `yaml:"store_name" env:"SHIPPING_STORE_NAME" validate:"required"`

	FirstName string `yaml:"first_name" env:"SHIPPING_FIRST_NAME" validate:"required"`
	LastName  string `yaml:"last_name" env:"SHIPPING_LAST_NAME"`
	Phone     string `yaml:"phone" env:"SHIPPING_PHONE" validate:"required"`
	Email     string `yaml:"email" env:"SHIPPING_EMAIL" validate:"required,email"`

	Address      string `yaml:"address" env:"SHIPPING_ADDRESS" validate:"required"`
	AddressLine2 string `yaml:"address_line_2" env:"SHIPPING_ADDRESS_LINE_2"`
	PostalCode   string `yaml:"postal_code" env:"SHIPPING_POSTAL_CODE" validate:"required"`
	Locality     string `yaml:"locality" env:"SHIPPING_LOCALITY" validate:"required"`
	Province     string `yaml:"province" env:"SHIPPING_PROVINCE"`
	Country      string `yaml:"country" env:"SHIPPING_COUNTRY" env-default:"NL" validate:"len=2"`

	Situation    string `yaml:"situation" env:"SHIPPING_SITUATION" env-default:"store" validate:"oneof=store home auction"`
	Floor        int    `yaml:"floor" env:"SHIPPING_FLOOR" validate:"gte=-3,lte=100"`
	Elevator     bool   `yaml:"elevator" env:"SHIPPING_ELEVATOR"`
	Instructions string `yaml:"instructions" env:"SHIPPING_INSTRUCTIONS"`

	// ShippingClasses are the product shipping class slugs the provider transports.
	ShippingClasses []string `yaml:"shipping_classes" env:"SHIPPING_CLASSES" env-separator:","`
}

// LoadShippingMethod reads the settings file at path, env variables override it.
// A missing file falls back to env only.
func LoadShippingMethod(path string) (ShippingMethod, error) {
	var cfg ShippingMethod

	var err error
	switch _, statErr := os.Stat(path); {
	case path == "" || errors.Is(statErr, os.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	default:
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return ShippingMethod{}, fmt.Errorf("failed to read shipping config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return ShippingMethod{}, fmt.Errorf("invalid shipping config: %w", err)
	}
	return cfg, nil
}
