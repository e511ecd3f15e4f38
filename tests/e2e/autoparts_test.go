//go:build integration

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	apiv1 "github.com/you-humble/autoparts/internal/transport/http/api/v1"
)

func money(s string) *apiv1.Money {
	m := apiv1.NewMoney(decimal.RequireFromString(s))
	return &m
}

func createPart(price string, stock int) apiv1.Part {
	return createPartWith(apiv1.PartRequest{
		Nombre:    "Correa de Distribución",
		Precio:    money(price),
		Stock:     &stock,
		Marca:     "Gates",
		Categoria: "Motor",
	})
}

func createPartWith(req apiv1.PartRequest) apiv1.Part {
	if req.Codigo == "" {
		req.Codigo = "IT-" + uuid.NewString()[:8]
	}

	var p apiv1.Part
	Expect(doJSON(http.MethodPost, "/api/piezas", req, &p)).To(Equal(http.StatusCreated))
	return p
}

func partIDs(path string) []int64 {
	var parts []apiv1.Part
	Expect(doJSON(http.MethodGet, path, nil, &parts)).To(Equal(http.StatusOK))

	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.ID)
	}
	return ids
}

func invoiceIDs(path string) []int64 {
	var invoices []apiv1.Invoice
	Expect(doJSON(http.MethodGet, path, nil, &invoices)).To(Equal(http.StatusOK))

	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	return ids
}

func periodStats(from, to time.Time) apiv1.InvoiceStats {
	var stats apiv1.InvoiceStats
	status := doJSON(http.MethodGet, fmt.Sprintf("/api/facturas/estadisticas/periodo?fechaInicio=%s&fechaFin=%s",
		url.QueryEscape(from.Format(time.RFC3339Nano)), url.QueryEscape(to.Format(time.RFC3339Nano))),
		nil, &stats)
	Expect(status).To(Equal(http.StatusOK))
	return stats
}

func getPart(id int64) apiv1.Part {
	var p apiv1.Part
	Expect(doJSON(http.MethodGet, fmt.Sprintf("/api/piezas/%d", id), nil, &p)).To(Equal(http.StatusOK))
	return p
}

func movements(id int64) []apiv1.StockMovement {
	var ms []apiv1.StockMovement
	Expect(doJSON(http.MethodGet, fmt.Sprintf("/api/piezas/%d/movimientos", id), nil, &ms)).To(Equal(http.StatusOK))
	return ms
}

func movementKinds(ms []apiv1.StockMovement) []string {
	kinds := make([]string, 0, len(ms))
	for _, m := range ms {
		kinds = append(kinds, m.Tipo)
	}
	return kinds
}

func createInvoice(items ...apiv1.CreateInvoiceItemRequest) (apiv1.Invoice, int) {
	var inv apiv1.Invoice
	status := doJSON(http.MethodPost, "/api/facturas", apiv1.CreateInvoiceRequest{
		ClienteNombre:    "Talleres Martínez",
		ClienteDocumento: "B12345678",
		ClienteEmail:     "compras@talleresmartinez.es",
		Items:            items,
	}, &inv)

	return inv, status
}

var _ = Describe("Parts catalog", func() {
	It("is seeded with the sample parts on start", func() {
		var p apiv1.Part
		Expect(doJSON(http.MethodGet, "/api/piezas/codigo/FIL001", nil, &p)).To(Equal(http.StatusOK))
		Expect(p.Nombre).To(Equal("Filtro de Aceite"))
		Expect(p.Precio.String()).To(Equal("25.5"))

		ms := movements(p.ID)
		Expect(movementKinds(ms)).To(ContainElement("INITIAL"))
	})

	It("rejects a duplicate code", func() {
		p := createPart("10.00", 5)
		stock := 1

		status := doJSON(http.MethodPost, "/api/piezas", apiv1.PartRequest{
			Nombre: "Duplicada",
			Codigo: p.Codigo,
			Precio: money("1.00"),
			Stock:  &stock,
		}, nil)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	It("records a manual stock movement", func() {
		p := createPart("12.40", 10)

		var updated apiv1.Part
		status := doJSON(http.MethodPatch, fmt.Sprintf("/api/piezas/%d/stock?nuevoStock=4", p.ID), nil, &updated)
		Expect(status).To(Equal(http.StatusOK))
		Expect(updated.Stock).To(Equal(4))

		ms := movements(p.ID)
		Expect(movementKinds(ms)).To(ContainElements("INITIAL", "MANUAL_SET"))
	})

	It("caches part lookups in redis and drops them on writes", func() {
		p := createPart("8.00", 3)
		key := fmt.Sprintf("%s:part:id:%d", cachePrefix, p.ID)

		getPart(p.ID)
		Expect(redisClient().Exists(ctx, key).Val()).To(Equal(int64(1)))

		status := doJSON(http.MethodPatch, fmt.Sprintf("/api/piezas/%d/stock?nuevoStock=9", p.ID), nil, nil)
		Expect(status).To(Equal(http.StatusOK))
		Expect(redisClient().Exists(ctx, key).Val()).To(Equal(int64(0)))

		Expect(getPart(p.ID).Stock).To(Equal(9))
	})

	Context("search", func() {
		It("finds a term that only appears in the description", func() {
			token := "zx" + uuid.NewString()[:8]
			stock := 3
			p := createPartWith(apiv1.PartRequest{
				Nombre:      "Pastilla de Freno",
				Descripcion: "Juego delantero ref " + strings.ToUpper(token),
				Precio:      money("31.00"),
				Stock:       &stock,
			})

			Expect(partIDs("/api/piezas/buscar/termino?termino=" + token)).To(ContainElement(p.ID))
			Expect(partIDs("/api/piezas/buscar/nombre?nombre=" + token)).NotTo(ContainElement(p.ID))
		})

		It("treats the low stock threshold as exclusive", func() {
			below := createPart("9.00", 2)
			at := createPart("9.00", 3)

			ids := partIDs("/api/piezas/buscar/stock-bajo?stockMinimo=3")
			Expect(ids).To(ContainElement(below.ID))
			Expect(ids).NotTo(ContainElement(at.ID))
		})

		It("includes both price bounds", func() {
			low := createPart("7311.10", 1)
			high := createPart("7311.90", 1)
			over := createPart("7311.91", 1)

			ids := partIDs("/api/piezas/buscar/precio?precioMin=7311.10&precioMax=7311.90")
			Expect(ids).To(ContainElements(low.ID, high.ID))
			Expect(ids).NotTo(ContainElement(over.ID))
		})
	})
})

var _ = Describe("Invoices", func() {
	It("draws stock on create and returns it on cancel", func() {
		p := createPart("100.00", 5)

		inv, status := createInvoice(apiv1.CreateInvoiceItemRequest{PiezaID: p.ID, Cantidad: 3})
		Expect(status).To(Equal(http.StatusCreated))
		Expect(inv.NumeroFactura).To(MatchRegexp(`^FAC-\d{8}-\d{6}$`))
		Expect(inv.Estado).To(Equal("PENDIENTE"))
		Expect(inv.Subtotal.String()).To(Equal("300"))
		Expect(inv.Impuesto.String()).To(Equal("63"))
		Expect(inv.Total.String()).To(Equal("363"))
		Expect(inv.Items).To(HaveLen(1))
		Expect(inv.Items[0].PiezaCodigo).To(Equal(p.Codigo))

		Expect(getPart(p.ID).Stock).To(Equal(2))

		var voided apiv1.Invoice
		status = doJSON(http.MethodPut, fmt.Sprintf("/api/facturas/%d/anular", inv.ID), nil, &voided)
		Expect(status).To(Equal(http.StatusOK))
		Expect(voided.Estado).To(Equal("ANULADA"))

		Expect(getPart(p.ID).Stock).To(Equal(5))
		Expect(movementKinds(movements(p.ID))).To(ContainElements("INITIAL", "INVOICE_SALE", "INVOICE_VOID"))

		By("refusing a second cancel")
		status = doJSON(http.MethodPut, fmt.Sprintf("/api/facturas/%d/anular", inv.ID), nil, nil)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	It("fails without side effects when stock is short", func() {
		enough := createPart("10.00", 10)
		short := createPart("20.00", 1)

		_, status := createInvoice(
			apiv1.CreateInvoiceItemRequest{PiezaID: enough.ID, Cantidad: 2},
			apiv1.CreateInvoiceItemRequest{PiezaID: short.ID, Cantidad: 2},
		)
		Expect(status).To(Equal(http.StatusBadRequest))

		Expect(getPart(enough.ID).Stock).To(Equal(10))
		Expect(getPart(short.ID).Stock).To(Equal(1))
	})

	It("publishes invoice.created", func() {
		p := createPart("15.00", 4)

		inv, status := createInvoice(apiv1.CreateInvoiceItemRequest{PiezaID: p.ID, Cantidad: 1})
		Expect(status).To(Equal(http.StatusCreated))

		cfg := sarama.NewConfig()
		cfg.Version = sarama.V4_0_0_0
		c, err := sarama.NewConsumer(kafkaC.Brokers(), cfg)
		Expect(err).NotTo(HaveOccurred())
		defer c.Close()

		pc, err := c.ConsumePartition(topicInvoiceEvents, 0, sarama.OffsetOldest)
		Expect(err).NotTo(HaveOccurred())
		defer pc.Close()

		Eventually(func() bool {
			select {
			case msg := <-pc.Messages():
				var ev struct {
					Type   string `json:"type"`
					Number string `json:"number"`
					Status string `json:"status"`
				}
				if json.Unmarshal(msg.Value, &ev) != nil {
					return false
				}
				return ev.Type == "invoice.created" && ev.Number == inv.NumeroFactura && ev.Status == "PENDIENTE"
			default:
				return false
			}
		}).WithTimeout(15 * time.Second).WithPolling(50 * time.Millisecond).Should(BeTrue())
	})

	It("is marked as paid when a payment event arrives", func() {
		p := createPart("42.00", 2)

		inv, status := createInvoice(apiv1.CreateInvoiceItemRequest{PiezaID: p.ID, Cantidad: 1})
		Expect(status).To(Equal(http.StatusCreated))

		payload, err := json.Marshal(map[string]any{
			"eventId":       uuid.NewString(),
			"invoiceNumber": inv.NumeroFactura,
		})
		Expect(err).NotTo(HaveOccurred())

		prod := newSyncProducer()
		defer prod.Close()

		_, _, err = prod.SendMessage(&sarama.ProducerMessage{
			Topic: topicPayments,
			Key:   sarama.StringEncoder(inv.NumeroFactura),
			Value: sarama.ByteEncoder(payload),
		})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func(g Gomega) {
			var got apiv1.Invoice
			g.Expect(doJSON(http.MethodGet, fmt.Sprintf("/api/facturas/%d", inv.ID), nil, &got)).To(Equal(http.StatusOK))
			g.Expect(got.Estado).To(Equal("PAGADA"))
			g.Expect(got.FechaPago).NotTo(BeNil())
		}).WithTimeout(20 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())

		By("refusing to cancel a paid invoice")
		status = doJSON(http.MethodPut, fmt.Sprintf("/api/facturas/%d/anular", inv.ID), nil, nil)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	It("rejects a reused invoice number without side effects", func() {
		p := createPart("50.00", 6)

		first, status := createInvoice(apiv1.CreateInvoiceItemRequest{PiezaID: p.ID, Cantidad: 1})
		Expect(status).To(Equal(http.StatusCreated))
		Expect(getPart(p.ID).Stock).To(Equal(5))

		from, to := time.Now().Add(-time.Hour), time.Now().Add(time.Hour)
		before := periodStats(from, to)

		status = doJSON(http.MethodPost, "/api/facturas", apiv1.CreateInvoiceRequest{
			NumeroFactura: first.NumeroFactura,
			ClienteNombre: "Recambios Sur",
			Items:         []apiv1.CreateInvoiceItemRequest{{PiezaID: p.ID, Cantidad: 2}},
		}, nil)
		Expect(status).To(Equal(http.StatusBadRequest))

		Expect(getPart(p.ID).Stock).To(Equal(5))
		Expect(periodStats(from, to).CantidadFacturas).To(Equal(before.CantidadFacturas))
		Expect(movementKinds(movements(p.ID))).To(HaveLen(2))
	})

	It("matches the minimum total inclusively", func() {
		p := createPart("5123.00", 2)

		inv, status := createInvoice(apiv1.CreateInvoiceItemRequest{PiezaID: p.ID, Cantidad: 1})
		Expect(status).To(Equal(http.StatusCreated))
		Expect(inv.Total.String()).To(Equal("6198.83"))

		Expect(invoiceIDs("/api/facturas/monto-minimo?montoMinimo=6198.83")).To(ContainElement(inv.ID))
		Expect(invoiceIDs("/api/facturas/monto-minimo?montoMinimo=6198.84")).NotTo(ContainElement(inv.ID))
	})

	It("includes both ends of a period", func() {
		p := createPart("11.00", 2)

		created, status := createInvoice(apiv1.CreateInvoiceItemRequest{PiezaID: p.ID, Cantidad: 1})
		Expect(status).To(Equal(http.StatusCreated))

		var stored apiv1.Invoice
		Expect(doJSON(http.MethodGet, fmt.Sprintf("/api/facturas/%d", created.ID), nil, &stored)).To(Equal(http.StatusOK))

		at := url.QueryEscape(stored.FechaCreacion.Format(time.RFC3339Nano))
		Expect(invoiceIDs(fmt.Sprintf("/api/facturas/periodo?fechaInicio=%s&fechaFin=%s", at, at))).
			To(ContainElement(stored.ID))
	})

	It("reports zero for a period without invoices", func() {
		stats := periodStats(
			time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2001, 1, 2, 0, 0, 0, 0, time.UTC),
		)
		Expect(stats.CantidadFacturas).To(BeZero())
		Expect(stats.TotalFacturasPagadas.IsZero()).To(BeTrue())
	})

	It("reports period statistics", func() {
		from := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
		to := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)

		var stats apiv1.InvoiceStats
		status := doJSON(http.MethodGet,
			fmt.Sprintf("/api/facturas/estadisticas/periodo?fechaInicio=%s&fechaFin=%s", from, to),
			nil, &stats)
		Expect(status).To(Equal(http.StatusOK))
		Expect(stats.CantidadFacturas).To(BeNumerically(">=", 1))
	})
})
