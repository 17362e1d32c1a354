package order

import (
	"context"

	"seafresh-be/internal/logger"
	"seafresh-be/internal/seller"

	"go.uber.org/zap"
)

// SellerDirectory resolves many sellers in one call.
type SellerDirectory interface {
	FindByIDs(ctx context.Context, ids []string) ([]*seller.Seller, error)
}

func distinctSellerIDs(orders []*Order) []string {
	seen := map[string]bool{}
	ids := []string{}
	for _, o := range orders {
		for _, it := range o.Items {
			if it.SellerID == nil || *it.SellerID == "" || seen[*it.SellerID] {
				continue
			}
			seen[*it.SellerID] = true
			ids = append(ids, *it.SellerID)
		}
	}
	return ids
}

// Attribute attaches seller display info to every line item of orders using a
// single directory lookup for the whole batch. It never fails: unknown sellers
// and lookup errors leave SellerInfo nil.
func Attribute(ctx context.Context, dir SellerDirectory, orders []*Order) []*AttributedOrder {
	byID := map[string]*seller.Info{}

	if ids := distinctSellerIDs(orders); len(ids) > 0 {
		sellers, err := dir.FindByIDs(ctx, ids)
		if err != nil {
			logger.FromCtx(ctx).Warn("seller attribution lookup failed",
				zap.Int("seller_count", len(ids)),
				zap.Error(err),
			)
		}
		for _, s := range sellers {
			if s != nil {
				byID[s.ID] = s.Info()
			}
		}
	}

	out := make([]*AttributedOrder, 0, len(orders))
	for _, o := range orders {
		items := make([]AttributedItem, 0, len(o.Items))
		for _, it := range o.Items {
			var info *seller.Info
			if it.SellerID != nil {
				info = byID[*it.SellerID]
			}
			items = append(items, AttributedItem{LineItem: it, SellerInfo: info})
		}
		out = append(out, &AttributedOrder{Order: o, Items: items})
	}
	return out
}

// AttributeOne is Attribute for a single order.
func AttributeOne(ctx context.Context, dir SellerDirectory, o *Order) *AttributedOrder {
	return Attribute(ctx, dir, []*Order{o})[0]
}
