package services

import (
	"testing"
	"time"

	"restaurant-pos-api/errs"
	"restaurant-pos-api/models"
	"restaurant-pos-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReportRepo computes the aggregates straight off the order fake
type memReportRepo struct {
	orders *memOrderRepo
}

func (m *memReportRepo) ItemFrequency(start, end time.Time) ([]repository.ItemCount, error) {
	orders, err := m.orders.List(repository.OrderFilter{Status: models.OrderPaid})
	if err != nil {
		return nil, err
	}
	byItem := map[string]*repository.ItemCount{}
	for _, o := range orders {
		if o.CreatedAt.Before(start) || !o.CreatedAt.Before(end) {
			continue
		}
		for _, it := range o.Items {
			row, ok := byItem[it.MenuItemID]
			if !ok {
				row = &repository.ItemCount{MenuItemID: it.MenuItemID, Name: it.Name}
				byItem[it.MenuItemID] = row
			}
			row.Quantity += it.Quantity
			row.Revenue += it.Price * float64(it.Quantity)
		}
	}
	var out []repository.ItemCount
	for _, row := range byItem {
		out = append(out, *row)
	}
	return out, nil
}

func (m *memReportRepo) OrdersInRange(start, end time.Time) ([]models.Order, error) {
	all, err := m.orders.List(repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	var out []models.Order
	for _, o := range all {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

func newReportFixture() (*ReportService, *posFixture) {
	f := newPOSFixture()
	svc := NewReportService(&memReportRepo{orders: f.orders}, f.payments)
	return svc, f
}

func settleRound(t *testing.T, f *posFixture, number int, method models.PaymentMethod, amount, tip float64) {
	t.Helper()
	table := f.occupiedTable(number, "W1")
	item := f.menuItem("Dish", amount)
	order, err := f.orderSvc.Create(asRole(models.RoleWaiter), CreateOrderInput{
		TableID: table.ID,
		Items:   []OrderItemInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = f.paymentSvc.Settle(asRole(models.RoleManager), SettleInput{
		OrderID: order.ID, Amount: amount, Tip: tip, Method: method,
	})
	require.NoError(t, err)
}

func reportRange() (time.Time, time.Time) {
	now := time.Now()
	return now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)
}

func TestRevenueReport(t *testing.T) {
	svc, f := newReportFixture()
	settleRound(t, f, 1, models.PayCash, 20.00, 2.00)
	settleRound(t, f, 2, models.PayCard, 35.00, 5.00)
	settleRound(t, f, 3, models.PayCard, 15.00, 0)

	start, end := reportRange()
	report, err := svc.Revenue(asRole(models.RoleManager), start, end)
	require.NoError(t, err)
	assert.InDelta(t, 70.00, report.Total, 1e-9)
	assert.InDelta(t, 7.00, report.Tips, 1e-9)
	assert.InDelta(t, 20.00, report.ByMethod["cash"], 1e-9)
	assert.InDelta(t, 50.00, report.ByMethod["card"], 1e-9)
	assert.Len(t, report.Daily, 1)
}

func TestItemFrequency(t *testing.T) {
	svc, f := newReportFixture()
	settleRound(t, f, 1, models.PayCash, 20.00, 0)
	settleRound(t, f, 2, models.PayCash, 20.00, 0)

	start, end := reportRange()
	rows, err := svc.ItemFrequency(asRole(models.RoleOwner), start, end)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	var total int
	for _, row := range rows {
		total += row.Quantity
	}
	assert.Equal(t, 2, total)
}

func TestOrderStatistics(t *testing.T) {
	svc, f := newReportFixture()
	settleRound(t, f, 1, models.PayCash, 30.00, 0)
	settleRound(t, f, 2, models.PayCard, 10.00, 0)

	start, end := reportRange()
	stats, err := svc.OrderStatistics(asRole(models.RoleManager), start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 2, stats.ByStatus[string(models.OrderPaid)])
	assert.InDelta(t, 20.00, stats.AverageAmount, 1e-9)
	assert.Equal(t, 2, stats.ByDayOfWeek[time.Now().Weekday().String()])
}

func TestReportsRequirePermission(t *testing.T) {
	svc, _ := newReportFixture()
	start, end := reportRange()

	for _, role := range []models.Role{models.RoleHost, models.RoleWaiter, models.RoleChef} {
		_, err := svc.Revenue(asRole(role), start, end)
		require.Error(t, err, "role %s", role)
		assert.ErrorIs(t, err, errs.ErrAuthorization)
	}
	_, err := svc.ItemFrequency(asRole(models.RoleWaiter), start, end)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrAuthorization)
}
