// ordergen fires synthetic orders at a running counterd, for demos and
// for soaking the offline queue: point it at an agent whose ERP API is
// down and every order lands in the spool.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/Kavesh2000/ERP/internal/domain"
)

func main() {
	addr := flag.String("addr", "http://localhost:8081", "counterd panel address")
	rate := flag.Int("rate", 5, "orders per second")
	duration := flag.Duration("duration", 10*time.Second, "how long to run")
	products := flag.Int("products", 8, "product id range to draw from")
	flag.Parse()

	if *rate <= 0 {
		log.Fatal("rate must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := *addr + "/api/orders"

	var sent, confirmed, pending, refused atomic.Int64

	log.Printf("sending %d orders/s to %s for %v", *rate, endpoint, *duration)

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()
	timer := time.NewTimer(*duration)
	defer timer.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			status, err := postOrder(ctx, client, endpoint, fakeOrder(*products))
			if err != nil {
				log.Printf("order not delivered: %v", err)
				continue
			}
			sent.Add(1)
			switch status {
			case http.StatusCreated:
				confirmed.Add(1)
			case http.StatusAccepted:
				pending.Add(1)
			default:
				refused.Add(1)
			}

		case <-timer.C:
			break loop

		case <-ctx.Done():
			break loop
		}
	}

	log.Printf("done: sent=%d confirmed=%d pending=%d refused=%d",
		sent.Load(), confirmed.Load(), pending.Load(), refused.Load())
}

func postOrder(ctx context.Context, client *http.Client, endpoint string, order domain.OrderRequest) (int, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func fakeOrder(products int) domain.OrderRequest {
	order := domain.OrderRequest{
		ProductID:       int64(rand.Intn(products) + 1),
		Quantity:        float64(rand.Intn(5) + 1),
		PaymentMethod:   domain.PaymentCash,
		ClientTimestamp: time.Now().Format(time.RFC3339),
	}
	if rand.Intn(2) == 0 {
		order.PaymentMethod = domain.PaymentMpesa
	}
	// Roughly every third sale moves refill bottles.
	if rand.Intn(3) == 0 {
		order.UseBottle = true
		order.BottlesUsed = rand.Intn(3) + 1
		order.BottleSize = 20
		order.BottlePrice = float64(rand.Intn(200) + 50)
	}
	return order
}
