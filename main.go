package main

import (
	"log"

	"tableside/config"
	httpapi "tableside/internal/api/http"
	"tableside/internal/cart"
	"tableside/internal/domain"
	"tableside/internal/service"
	"tableside/internal/storage"
)

func main() {
	cfg := config.Load()

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	defer store.Close()

	menu := storage.NewCollection(store, storage.MenuKey, domain.DefaultMenu())
	orders := storage.NewCollection(store, storage.OrdersKey, []domain.Order{})
	tables := storage.NewCollection(store, storage.TablesKey, []domain.RestaurantTable{})

	catalogSvc := service.NewCatalogService(menu)
	orderSvc := service.NewOrderService(orders)
	tableSvc := service.NewTableService(tables, service.DefaultQRGenerator{BaseURL: cfg.BaseURL})
	resolver := service.NewTableSessionResolver(orders)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, tableSvc, resolver, cart.NewRegistry())
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}
