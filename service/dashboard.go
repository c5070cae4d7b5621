package service

import (
	"context"
	"sort"
	"time"

	"smarttech/dao"
	"smarttech/types"
)

type IDashboardService interface {
	// Overview 近12个月已支付订单的营收与Top5销量
	Overview(ctx context.Context) (*types.DashboardResp, error)
}

type DashboardService struct {
	OrderDao *dao.Order
}

var _ IDashboardService = (*DashboardService)(nil)

func NewDashboardService(orderDao *dao.Order) *DashboardService {
	return &DashboardService{OrderDao: orderDao}
}

func (s *DashboardService) Overview(ctx context.Context) (*types.DashboardResp, error) {
	since := time.Now().AddDate(-1, 0, 0)
	orders, err := s.OrderDao.ListPaidSince(ctx, since)
	if err != nil {
		return nil, err
	}

	monthly := map[string]*types.MonthlyStat{}
	type seller struct {
		title string
		qty   int64
	}
	sellers := map[int64]*seller{}

	for _, o := range orders {
		month := o.OrderDate.Format("2006-01")
		stat, ok := monthly[month]
		if !ok {
			stat = &types.MonthlyStat{Month: month}
			monthly[month] = stat
		}
		stat.Revenue += o.TotalAmount
		stat.Orders++

		for i := range o.Products {
			line := &o.Products[i]
			sl, ok := sellers[line.ProductID]
			if !ok {
				sl = &seller{title: line.Title}
				sellers[line.ProductID] = sl
			}
			sl.qty += int64(line.Qty)
		}
	}

	resp := &types.DashboardResp{}
	for _, stat := range monthly {
		resp.Monthly = append(resp.Monthly, *stat)
	}
	sort.Slice(resp.Monthly, func(i, j int) bool {
		return resp.Monthly[i].Month < resp.Monthly[j].Month
	})

	for id, sl := range sellers {
		resp.TopSellers = append(resp.TopSellers, types.TopSeller{
			ProductID: id,
			Title:     sl.title,
			Quantity:  sl.qty,
		})
	}
	sort.Slice(resp.TopSellers, func(i, j int) bool {
		if resp.TopSellers[i].Quantity != resp.TopSellers[j].Quantity {
			return resp.TopSellers[i].Quantity > resp.TopSellers[j].Quantity
		}
		return resp.TopSellers[i].ProductID < resp.TopSellers[j].ProductID
	})
	if len(resp.TopSellers) > 5 {
		resp.TopSellers = resp.TopSellers[:5]
	}
	return resp, nil
}
