package escrow

import (
	"github.com/megapayer/site/internal/animate"
	"github.com/megapayer/site/internal/scene"
)

// Parties are the three anchors the transfer token moves between.
type Parties struct {
	Buyer, Escrow, Seller scene.Vec3
}

// TokenPosition places the moving token for a state. During Reset the
// token rests with the buyer.
func (p Parties) TokenPosition(st State) scene.Vec3 {
	t := animate.EaseInOutCubic(st.Progress)
	switch st.Step {
	case BuyerToEscrow:
		return p.Buyer.Lerp(p.Escrow, t)
	case EscrowToSeller:
		return p.Escrow.Lerp(p.Seller, t)
	case SellerToBuyer:
		return p.Seller.Lerp(p.Buyer, t)
	default:
		return p.Buyer
	}
}
