package dlmm

import "fmt"

// Layout distinguishes how a BinArray version stores liquidity supply
// relative to position shares. Version 0 arrays store supply in share
// units directly; version 1 arrays store it scaled up by 2^ScaleOffset,
// matching the scaling of PositionV2 liquidity shares.
type Layout uint8

const (
	LayoutV0 Layout = 0
	LayoutV1 Layout = 1
)

// SupplyScaleShift returns how far a bin's LiquiditySupply must be
// shifted right to land in the same unit as a descaled position share.
func (l Layout) SupplyScaleShift() uint {
	if l == LayoutV1 {
		return ScaleOffset
	}
	return 0
}

func resolveLayout(version uint8) (Layout, error) {
	switch version {
	case 0:
		return LayoutV0, nil
	case 1:
		return LayoutV1, nil
	default:
		return 0, fmt.Errorf("bin array version %d: %w", version, ErrUnknownLayoutVersion)
	}
}
