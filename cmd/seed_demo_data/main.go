package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go-fieldops/internal/config"
	"go-fieldops/internal/database"
	"go-fieldops/internal/features/offer"
	"go-fieldops/internal/features/report"
	"go-fieldops/internal/features/worker"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var brigades = []report.Brigade{
	{
		Lider:       report.WorkerRef{CI: "85010112345", Nombre: "Ana", Apellido: "Perez"},
		Integrantes: []report.WorkerRef{{CI: "90020254321", Nombre: "Luis", Apellido: "Gomez"}},
	},
	{
		Lider: report.WorkerRef{CI: "79030398765", Nombre: "Eva", Apellido: "Diaz"},
		Integrantes: []report.WorkerRef{
			{CI: "88040411223", Nombre: "Jorge", Apellido: "Suarez"},
			{CI: "90020254321", Nombre: "Luis", Apellido: "Gomez"},
		},
	},
}

var materials = []report.Material{
	{Codigo: "CAB-6", Descripcion: "Cable solar 6mm", UM: "m", Categoria: "cables"},
	{Codigo: "PAN-550", Descripcion: "Panel 550W", UM: "u", Categoria: "paneles"},
	{Codigo: "INV-5K", Descripcion: "Inversor 5kW", UM: "u", Categoria: "inversores"},
	{Codigo: "EST-AL", Descripcion: "Estructura aluminio", UM: "u", Categoria: "estructuras"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	mongoDB := &database.MongodbDB{Client: client, DB: client.Database(cfg.DBName)}

	fmt.Println("Seeding demo data...")
	seedDirectory(ctx, mongoDB)
	seedReports(ctx, mongoDB)
	seedOffers(ctx, mongoDB)
	fmt.Println("Done.")
}

// seedDirectory registers every worker and brigade used by the demo reports.
func seedDirectory(ctx context.Context, db *database.MongodbDB) {
	if n, _ := db.DB.Collection(database.WorkersCollection).CountDocuments(ctx, bson.M{}); n > 0 {
		fmt.Printf("Workers already present (%d), skipping\n", n)
		return
	}

	workerRepo := worker.NewWorkerRepository(db)
	brigadeRepo := worker.NewBrigadeRepository(db)

	seen := map[string]bool{}
	addWorker := func(ref report.WorkerRef) {
		if seen[ref.CI] {
			return
		}
		seen[ref.CI] = true
		if err := workerRepo.Create(ctx, &worker.Worker{CI: ref.CI, Nombre: ref.Nombre, Apellido: ref.Apellido}); err != nil {
			log.Printf("Failed to create worker %s: %v", ref.CI, err)
		}
	}

	for _, b := range brigades {
		addWorker(b.Lider)
		members := make([]string, 0, len(b.Integrantes))
		for _, m := range b.Integrantes {
			addWorker(m)
			members = append(members, m.CI)
		}
		if err := brigadeRepo.Create(ctx, &worker.Brigade{LiderCI: b.Lider.CI, IntegrantesCI: members}); err != nil {
			log.Printf("Failed to create brigade %s: %v", b.Lider.CI, err)
		}
	}
	fmt.Printf("Created %d workers and %d brigades\n", len(seen), len(brigades))
}

// seedReports writes one report per brigade and weekday of the current month
// unless the collection already has data.
func seedReports(ctx context.Context, db *database.MongodbDB) {
	if n, _ := db.DB.Collection(database.ReportsCollection).CountDocuments(ctx, bson.M{}); n > 0 {
		fmt.Printf("Reports already present (%d), skipping\n", n)
		return
	}

	repo := report.NewReportRepository(db)
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	types := []report.ReportType{report.ReportTypeInversion, report.ReportTypeAveria, report.ReportTypeMantenimiento}

	created := 0
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		for _, b := range brigades {
			start := 7 + rand.Intn(3)
			r := &report.Report{
				TipoReporte: types[rand.Intn(len(types))],
				Brigada:     b,
				Materiales:  randomMaterials(),
				FechaHora: report.FechaHora{
					Fecha:      day.Format("2006-01-02"),
					HoraInicio: fmt.Sprintf("%02d:00", start),
					HoraFin:    fmt.Sprintf("%02d:%02d", start+6+rand.Intn(3), 15*rand.Intn(4)),
				},
				Cliente:     map[string]any{"numero": fmt.Sprintf("C-%04d", rand.Intn(500)), "nombre": "Cliente demo"},
				Descripcion: "Reporte de demostracion",
			}
			if err := repo.Create(ctx, r); err != nil {
				log.Printf("Failed to create report: %v", err)
				continue
			}
			created++
		}
	}
	fmt.Printf("Created %d reports\n", created)
}

func randomMaterials() []report.Material {
	var out []report.Material
	for _, m := range materials {
		if rand.Intn(2) == 0 {
			continue
		}
		m.Cantidad = rand.Intn(20) + 1
		out = append(out, m)
	}
	return out
}

func seedOffers(ctx context.Context, db *database.MongodbDB) {
	if n, _ := db.DB.Collection(database.OffersCollection).CountDocuments(ctx, bson.M{}); n > 0 {
		fmt.Printf("Offers already present (%d), skipping\n", n)
		return
	}

	repo := offer.NewOfferRepository(db)
	categoria := func(s string) *string { return &s }
	precioCliente := 4200.0

	offers := []offer.Offer{
		{
			Descripcion:   "Sistema fotovoltaico 3kW",
			Precio:        4500,
			PrecioCliente: &precioCliente,
			Garantias:     []string{"10 anos paneles", "5 anos inversor"},
			Elementos: []offer.Element{
				{Categoria: categoria("paneles"), Descripcion: "Panel 550W", Cantidad: 6},
				{Categoria: categoria("inversores"), Descripcion: "Inversor 3kW", Cantidad: 1},
				{Categoria: categoria("cables"), Descripcion: "Cable solar 6mm", Cantidad: 40},
			},
		},
		{
			Descripcion: "Sistema fotovoltaico 5kW",
			Precio:      7200,
			Garantias:   []string{"10 anos paneles"},
			Elementos: []offer.Element{
				{Categoria: categoria("paneles"), Descripcion: "Panel 550W", Cantidad: 10},
				{Categoria: categoria("inversores"), Descripcion: "Inversor 5kW", Cantidad: 1},
			},
		},
	}

	for i := range offers {
		o := &offers[i]
		var withIDs []offer.Element
		for _, e := range o.Elementos {
			withIDs, _ = offer.Append(withIDs, e)
		}
		o.Elementos = withIDs

		if err := repo.Create(ctx, o); err != nil {
			log.Printf("Failed to create offer %s: %v", o.Descripcion, err)
			continue
		}
		fmt.Printf("Created offer: %s\n", o.Descripcion)
	}
}
