package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/sparrishn/cashflow"
)

// resolveAsset finds an asset by identity or by name (case-insensitive).
// An ambiguous name is an error rather than a guess.
func resolveAsset(p *cashflow.Player, ref string) (cashflow.Asset, error) {
	if _, a := p.FindAsset(ref); a != nil {
		return a, nil
	}
	var matches []cashflow.Asset
	for _, a := range p.Assets {
		if strings.EqualFold(a.AssetName(), ref) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no asset named %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%d assets named %q, use the id instead", len(matches), ref)
	}
}

type buyStockCmd struct {
	price    string
	shares   string
	dividend string
	cash     bool
}

func (*buyStockCmd) Name() string     { return "buy-stock" }
func (*buyStockCmd) Synopsis() string { return "buy a dividend-paying share position" }
func (*buyStockCmd) Usage() string {
	return `cfh buy-stock -price <amount> -shares <count> [-dividend <amount>] [-cash=false] <name>

  Buys shares at the given price. With -cash (the default) the full cost is
  paid from the game cash, borrowing automatically when short.

Usage Examples:
$ cfh buy-stock -price 10 -shares 100 -dividend 0.5 ACME
`
}

func (c *buyStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "Price per share.")
	f.StringVar(&c.shares, "shares", "", "Number of shares to buy.")
	f.StringVar(&c.dividend, "dividend", "0", "Monthly dividend per share.")
	f.BoolVar(&c.cash, "cash", true, "Pay the cost from the game cash.")
}

func (c *buyStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	name := strings.Join(f.Args(), " ")
	err := game.BuyStock(name,
		cashflow.ParseAmount(c.price),
		cashflow.ParseQuantity(c.shares),
		cashflow.ParseNonNegativeAmount(c.dividend),
		c.cash)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s shares of %s. Cash: %s\n", c.shares, name, game.Player().Cash)
	return subcommands.ExitSuccess
}

// financedFlags are the flags shared by buy-business and buy-realestate.
type financedFlags struct {
	cost      string
	down      string
	liability string
	cashflow  string
	cash      bool
}

func (c *financedFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cost, "cost", "", "Total cost of the purchase.")
	f.StringVar(&c.down, "down", "", "Down payment paid now.")
	f.StringVar(&c.liability, "liability", "", "Attached debt (defaults to cost minus down payment).")
	f.StringVar(&c.cashflow, "cashflow", "0", "Monthly cash flow, may be negative.")
	f.BoolVar(&c.cash, "cash", true, "Pay the down payment from the game cash.")
}

func (c *financedFlags) buy(f *flag.FlagSet, buy func(name string, cost, down, liability, cashflow cashflow.Money, autoCash bool) error) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	err := buy(name,
		cashflow.ParseAmount(c.cost),
		cashflow.ParseAmount(c.down),
		cashflow.ParseAmount(c.liability),
		cashflow.ParseAmount(c.cashflow),
		c.cash)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type buyBusinessCmd struct{ financedFlags }

func (*buyBusinessCmd) Name() string     { return "buy-business" }
func (*buyBusinessCmd) Synopsis() string { return "buy a financed business" }
func (*buyBusinessCmd) Usage() string {
	return `cfh buy-business -cost <amount> -down <amount> [-liability <amount>] [-cashflow <amount>] <name>

  Buys a business: only the down payment is paid now, the rest is debt
  attached to the asset.

Usage Examples:
$ cfh buy-business -cost 30000 -down 5000 -cashflow 450 "Car wash"
`
}

func (c *buyBusinessCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	status := c.buy(f, game.BuyBusiness)
	if status == subcommands.ExitSuccess {
		fmt.Printf("Bought business. Cash: %s\n", game.Player().Cash)
	}
	return status
}

type buyRealEstateCmd struct{ financedFlags }

func (*buyRealEstateCmd) Name() string     { return "buy-realestate" }
func (*buyRealEstateCmd) Synopsis() string { return "buy a financed property" }
func (*buyRealEstateCmd) Usage() string {
	return `cfh buy-realestate -cost <amount> -down <amount> [-liability <amount>] [-cashflow <amount>] <name>

  Buys real estate with the same financing rules as buy-business.
`
}

func (c *buyRealEstateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	status := c.buy(f, game.BuyRealEstate)
	if status == subcommands.ExitSuccess {
		fmt.Printf("Bought real estate. Cash: %s\n", game.Player().Cash)
	}
	return status
}

type buyPropertyCmd struct {
	cost string
	cash bool
}

func (*buyPropertyCmd) Name() string     { return "buy-property" }
func (*buyPropertyCmd) Synopsis() string { return "buy personal property (a doodad)" }
func (*buyPropertyCmd) Usage() string {
	return `cfh buy-property -cost <amount> <name>

  Buys personal property at full cost. It produces nothing.
`
}

func (c *buyPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cost, "cost", "", "Cost of the purchase.")
	f.BoolVar(&c.cash, "cash", true, "Pay the cost from the game cash.")
}

func (c *buyPropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	name := strings.Join(f.Args(), " ")
	if err := game.BuyPersonalProperty(name, cashflow.ParseAmount(c.cost), c.cash); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s. Cash: %s\n", name, game.Player().Cash)
	return subcommands.ExitSuccess
}

type sellStockCmd struct {
	price  string
	shares string
}

func (*sellStockCmd) Name() string     { return "sell-stock" }
func (*sellStockCmd) Synopsis() string { return "sell some or all shares of a stock position" }
func (*sellStockCmd) Usage() string {
	return `cfh sell-stock -price <amount> -shares <count> <name or id>

  Sells shares at the given price. Selling every held share removes the
  position.
`
}

func (c *sellStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "Sell price per share.")
	f.StringVar(&c.shares, "shares", "", "Number of shares to sell.")
}

func (c *sellStockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	asset, err := resolveAsset(game.Player(), strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := game.SellStock(asset.AssetID(), cashflow.ParseAmount(c.price), cashflow.ParseQuantity(c.shares)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %s shares of %s. Cash: %s\n", c.shares, asset.AssetName(), game.Player().Cash)
	return subcommands.ExitSuccess
}

type sellCmd struct {
	price string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell a business, property, or doodad outright" }
func (*sellCmd) Usage() string {
	return `cfh sell -price <amount> <name or id>

  Sells a non-stock asset. The price must cover any outstanding debt; only
  the difference is credited.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "price", "", "Sell price.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	asset, err := resolveAsset(game.Player(), strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := game.SellAsset(asset.AssetID(), cashflow.ParseAmount(c.price)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %s. Cash: %s\n", asset.AssetName(), game.Player().Cash)
	return subcommands.ExitSuccess
}

type removeAssetCmd struct{}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "drop an asset without any cash movement" }
func (*removeAssetCmd) Usage() string {
	return `cfh remove-asset <name or id>

  Removes an asset from the balance sheet without money changing hands.
`
}
func (*removeAssetCmd) SetFlags(*flag.FlagSet) {}

func (c *removeAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	game, _ := openGame()
	asset, err := resolveAsset(game.Player(), strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := game.RemoveAsset(asset.AssetID()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s.\n", asset.AssetName())
	return subcommands.ExitSuccess
}
