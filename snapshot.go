package fundamentals

import (
	"fmt"

	"github.com/etnz/fundamentals/date"
)

// InvestmentSnapshot is the point in time view of a stock, used to decide whether to invest.
//
// Figures cover the trailing four quarters. Every field is optional.
type InvestmentSnapshot struct {
	Date                   date.Date `json:"curr_date"`
	CurrentSharePrice      Number    `json:"current_share_price"`
	Past4QRevenue          Number    `json:"past_4q_revenue"`
	Past4QNetProfit        Number    `json:"past_4q_net_profit"`
	Past4QEarningsPerShare Number    `json:"past_4q_earnings_per_share"`
	StockType              StockType `json:"stock_type"`
	Action                 Action    `json:"invest"`
	Reasoning              string    `json:"investment_reasoning"`
}

// IsEmpty reports whether nothing has been recorded.
func (s InvestmentSnapshot) IsEmpty() bool { return s == InvestmentSnapshot{} }

// SnapshotFields lists the field names accepted by SetField, in form order.
var SnapshotFields = []string{
	"curr_date", "current_share_price", "past_4q_revenue", "past_4q_net_profit",
	"past_4q_earnings_per_share", "stock_type", "invest", "investment_reasoning",
}

// SetField parses value into the field known by its wire name.
func (s *InvestmentSnapshot) SetField(name, value string) error {
	var err error
	switch name {
	case "curr_date":
		if value == "" {
			s.Date = date.Date{}
			return nil
		}
		s.Date, err = date.Parse(value)
	case "current_share_price":
		s.CurrentSharePrice, err = ParseNumber(value)
	case "past_4q_revenue":
		s.Past4QRevenue, err = ParseNumber(value)
	case "past_4q_net_profit":
		s.Past4QNetProfit, err = ParseNumber(value)
	case "past_4q_earnings_per_share":
		s.Past4QEarningsPerShare, err = ParseNumber(value)
	case "stock_type":
		s.StockType, err = ParseStockType(value)
	case "invest":
		s.Action, err = ParseAction(value)
	case "investment_reasoning":
		s.Reasoning = value
	default:
		return fmt.Errorf("unknown snapshot field %q", name)
	}
	if err != nil {
		return fmt.Errorf("cannot set %s: %w", name, err)
	}
	return nil
}

// StockType is the Peter Lynch category of a stock.
type StockType int

const (
	UnknownStockType StockType = iota
	SlowGrower
	Stalwart
	FastGrower
	Cyclical
	Turnaround
	AssetPlay
	DeadStock
)

func (t StockType) String() string {
	switch t {
	case UnknownStockType:
		return ""
	case SlowGrower:
		return "slow_grower"
	case Stalwart:
		return "stalwart"
	case FastGrower:
		return "baggers"
	case Cyclical:
		return "cyclicals"
	case Turnaround:
		return "turnaround"
	case AssetPlay:
		return "asset_play"
	case DeadStock:
		return "dead_stock"
	default:
		return "unknown"
	}
}

// Label describes the stock type.
func (t StockType) Label() string {
	switch t {
	case SlowGrower:
		return "Slow Grower: <10% NP Growth"
	case Stalwart:
		return "Stalwart/Med Grower: 10-20% NP Growth"
	case FastGrower:
		return "Baggers/Fast Grower: >20% NP Growth"
	case Cyclical:
		return "Cyclicals: Cyclic NP trend"
	case Turnaround:
		return "Turnaround: Downtrodden in turnaround plan"
	case AssetPlay:
		return "Asset Play: Have huge hidden assets"
	case DeadStock:
		return "DEAD Stock: Static or downward NP trend"
	default:
		return "-"
	}
}

// StockTypes lists the known stock types.
func StockTypes() []StockType {
	return []StockType{SlowGrower, Stalwart, FastGrower, Cyclical, Turnaround, AssetPlay, DeadStock}
}

// ParseStockType parses the wire value of a stock type. The empty string is UnknownStockType.
func ParseStockType(s string) (StockType, error) {
	if s == "" {
		return UnknownStockType, nil
	}
	for _, t := range StockTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown stock type: %q", s)
}

func (t StockType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *StockType) UnmarshalText(text []byte) error {
	v, err := ParseStockType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Action is the investment decision.
type Action int

const (
	NoAction Action = iota
	Invest
	DontInvest
	Hold
	Wait
)

func (a Action) String() string {
	switch a {
	case NoAction:
		return ""
	case Invest:
		return "invest"
	case DontInvest:
		return "no"
	case Hold:
		return "hold"
	case Wait:
		return "wait"
	default:
		return "unknown"
	}
}

// Label describes the action.
func (a Action) Label() string {
	switch a {
	case Invest:
		return "Invest NOW"
	case DontInvest:
		return "No"
	case Hold:
		return "Hold if already bought"
	case Wait:
		return "Wait for lower price or P/E"
	default:
		return "-"
	}
}

// Actions lists the known actions.
func Actions() []Action { return []Action{Invest, DontInvest, Hold, Wait} }

// ParseAction parses the wire value of an action. The empty string is NoAction.
func ParseAction(s string) (Action, error) {
	if s == "" {
		return NoAction, nil
	}
	for _, a := range Actions() {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown investment action: %q", s)
}

func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Action) UnmarshalText(text []byte) error {
	v, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
