package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"wordhoard-backend/application/commands"
	"wordhoard-backend/infrastructure/di"
)

// Fixture describes a startup seed: locations to register, an optional
// exchange, and accounts with pre-granted letters. Used for local
// development and demos.
type Fixture struct {
	Locations []LocationSeed `yaml:"locations"`
	Exchange  *ExchangeSeed  `yaml:"exchange"`
	Accounts  []AccountSeed  `yaml:"accounts"`
}

// LocationSeed registers one claimable location
type LocationSeed struct {
	Label       string `yaml:"label"`
	MetadataRef string `yaml:"metadata_ref"`
	GeofenceRef string `yaml:"geofence_ref"`
}

// ExchangeSeed bootstraps the exchange
type ExchangeSeed struct {
	FeeRateBps uint64 `yaml:"fee_rate_bps"`
}

// AccountSeed creates one account, optionally with granted letters
type AccountSeed struct {
	DisplayName string `yaml:"display_name"`
	Bio         string `yaml:"bio"`
	Letters     string `yaml:"letters"`
}

// Load parses a fixture file
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &fixture, nil
}

// Apply runs the fixture through the regular command handlers so seeded
// state is indistinguishable from state created over the API.
func Apply(ctx context.Context, fixture *Fixture, c *di.Container) error {
	adminToken := c.Config.AdminToken

	for _, loc := range fixture.Locations {
		result, err := c.LocationHandler.HandleCreateLocation(ctx, &commands.CreateLocationCommand{
			Label:       loc.Label,
			MetadataRef: loc.MetadataRef,
			GeofenceRef: loc.GeofenceRef,
			AdminToken:  adminToken,
		})
		if err != nil {
			return fmt.Errorf("failed to seed location %q: %w", loc.Label, err)
		}
		c.Logger.Info("seeded location",
			zap.String("label", loc.Label),
			zap.String("location_id", result.LocationID),
		)
	}

	if fixture.Exchange != nil {
		feeRate := fixture.Exchange.FeeRateBps
		if feeRate == 0 {
			feeRate = c.Config.DefaultFeeRateBps
		}
		result, err := c.ExchangeAdminHandler.HandleCreateExchange(ctx, &commands.CreateExchangeCommand{
			FeeRateBps: feeRate,
			AdminToken: adminToken,
		})
		if err != nil {
			return fmt.Errorf("failed to seed exchange: %w", err)
		}
		c.Logger.Info("seeded exchange",
			zap.String("exchange_id", result.ExchangeID),
			zap.Uint64("fee_rate_bps", feeRate),
		)
	}

	for _, acct := range fixture.Accounts {
		result, err := c.AccountHandler.HandleCreateAccount(ctx, &commands.CreateAccountCommand{
			DisplayName: acct.DisplayName,
			Bio:         acct.Bio,
		})
		if err != nil {
			return fmt.Errorf("failed to seed account %q: %w", acct.DisplayName, err)
		}
		if acct.Letters != "" {
			err := c.AccountHandler.HandleAppendLetters(ctx, &commands.AppendLettersCommand{
				AccountID:  result.AccountID,
				Letters:    acct.Letters,
				AdminToken: adminToken,
			})
			if err != nil {
				return fmt.Errorf("failed to grant letters to %q: %w", acct.DisplayName, err)
			}
		}
		c.Logger.Info("seeded account",
			zap.String("display_name", acct.DisplayName),
			zap.String("account_id", result.AccountID),
		)
	}

	return nil
}
