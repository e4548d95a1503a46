package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xavierca1/cita-recordatorios/internal/entity"
	"github.com/xavierca1/cita-recordatorios/internal/usecase"
)

// Preview en seco de un lote de citas: lee el JSON de la API desde un
// archivo y muestra cómo quedaría cada mensaje, sin enviar nada.
//
//	go run ./cmd/preview datos-api.json
func main() {
	ruta := "test-api-data.json"
	if len(os.Args) > 1 {
		ruta = os.Args[1]
	}

	raw, err := os.ReadFile(ruta)
	if err != nil {
		log.Fatalf("❌ No se pudo leer %s: %v", ruta, err)
	}

	var doc struct {
		Data []entity.Cita `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("❌ JSON inválido en %s: %v", ruta, err)
	}

	fmt.Println("🔍 PROCESANDO DATOS DE LA API")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("\n📊 Total de citas en el JSON: %d\n", len(doc.Data))

	resumen := usecase.PreviewLote(doc.Data)

	for i, item := range resumen.Citas {
		p := item.Procesada

		fmt.Printf("\n📋 CITA %d - ID: %d\n", i+1, p.CitaID)
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("   {{1}} Nombre:       %s\n", p.Nombre)
		fmt.Printf("   {{2}} Fecha:        %s\n", p.Fecha)
		fmt.Printf("   {{3}} Hora:         %s\n", p.Hora)
		fmt.Printf("   {{4}} Médico:       %s\n", p.Medico)
		fmt.Printf("   {{5}} Sede:         %s\n", p.Sede)
		fmt.Printf("   {{6}} Consultorio:  %s\n", p.Consultorio)
		fmt.Printf("   {{7}} Tipo:         %s\n", p.Tipo)
		fmt.Printf("   {{8}} Entidad:      %s\n", p.Entidad)
		fmt.Printf("   📝  Observación:   %s\n", p.Observacion)
		if p.Telefono != "" {
			fmt.Printf("   📱  Teléfono:      %s\n", p.Telefono)
		} else {
			fmt.Printf("   📱  Teléfono:      ❌ SIN TELÉFONO\n")
		}

		if len(item.Alertas) > 0 {
			fmt.Println("\n   ⚠️  ALERTAS:")
			for _, alerta := range item.Alertas {
				fmt.Printf("      - %s\n", alerta)
			}
		} else {
			fmt.Println("\n   ✅ Cita válida para envío")
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("📊 RESUMEN:")
	fmt.Printf("   Total de citas:        %d\n", resumen.Total)
	fmt.Printf("   ✅ Con teléfono:       %d\n", resumen.ConTelefono)
	fmt.Printf("   ❌ Sin teléfono:       %d\n", resumen.SinTelefono)
	fmt.Printf("   📨 Listas para envío:  %d\n", resumen.ConTelefono)
}
