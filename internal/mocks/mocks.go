// Package mocks holds hand-rolled testify mocks for the service-facing
// interfaces used by the handler and service tests.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
	"tableside/internal/service"
)

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(tableName string) ([]byte, error) {
	args := m.Called(tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) List() []domain.Dish {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Dish)
}

func (m *CatalogService) Get(dishID string) (*domain.Dish, bool) {
	args := m.Called(dishID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Dish), args.Bool(1)
}

func (m *CatalogService) Save(dish domain.Dish) (domain.Dish, error) {
	args := m.Called(dish)
	return args.Get(0).(domain.Dish), args.Error(1)
}

func (m *CatalogService) Delete(dishID string) {
	m.Called(dishID)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) PlaceOrder(c service.Cart, tableNumber string) (*domain.Order, error) {
	args := m.Called(c, tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) UpdateStatus(orderID string, next domain.OrderStatus) error {
	args := m.Called(orderID, next)
	return args.Error(0)
}

func (m *OrderService) List() []domain.Order {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Order)
}

type TableService struct {
	mock.Mock
}

func (m *TableService) List() []domain.RestaurantTable {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.RestaurantTable)
}

func (m *TableService) Add(name string) (domain.RestaurantTable, error) {
	args := m.Called(name)
	return args.Get(0).(domain.RestaurantTable), args.Error(1)
}

func (m *TableService) Delete(tableID string) {
	m.Called(tableID)
}

func (m *TableService) QRCode(tableID string) ([]byte, error) {
	args := m.Called(tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type SessionResolver struct {
	mock.Mock
}

func (m *SessionResolver) Resolve(tableNumber string) (*domain.Order, bool) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Order), args.Bool(1)
}

var (
	_ service.QRGenerator             = (*QRGenerator)(nil)
	_ service.CatalogServiceInterface = (*CatalogService)(nil)
	_ service.OrderServiceInterface   = (*OrderService)(nil)
	_ service.TableServiceInterface   = (*TableService)(nil)
	_ service.SessionResolver         = (*SessionResolver)(nil)
)
