package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	// Dossier de destination pour l'émetteur
	outputDir := "./test_data"
	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		panic(fmt.Sprintf("Impossible de créer le dossier : %v", err))
	}

	fmt.Println("🚀 Debug-Lab : Génération des journaux de test...")

	// 1. Un journal réaliste : niveaux mélangés, quelques secrets à caviarder
	logPath := filepath.Join(outputDir, "session_realiste.log")
	genRealisticLog(logPath, 500)

	// 2. Un journal de stress : lignes plus longues qu'un chunk (4091)
	bulkPath := filepath.Join(outputDir, "session_bulk.log")
	genBulkLog(bulkPath, 20)

	fmt.Println("\n✅ Prêt ! Tu peux maintenant rejouer ces fichiers avec l'émetteur")
}

var levels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}

var templates = []string{
	"%s: handling request %d for user u-%d",
	"%s: cache miss on key entry-%d, falling back to store (%d ms)",
	"%s: worker %d finished batch of %d items",
	"%s: retrying upstream call %d, attempt %d",
}

// Les lignes piégées doivent déclencher le caviardage côté collecteur.
var trapped = []string{
	"DEBUG: connecting with password hunter2 to replica",
	"INFO: issued api_key sk-test-4242-4242 for tenant 7",
	"WARN: bearer eyJhbGciOiJIUzI1NiJ9.payload.sig rejected, expired",
	"DEBUG: client_secret 0badc0ffee loaded from legacy vault",
}

// genRealisticLog écrit un journal multi-niveaux avec des secrets dispersés
func genRealisticLog(path string, lines int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var b strings.Builder

	for i := 0; i < lines; i++ {
		// Une ligne sur vingt environ contient un secret
		if rng.Intn(20) == 0 {
			b.WriteString(trapped[rng.Intn(len(trapped))])
		} else {
			tpl := templates[rng.Intn(len(templates))]
			level := levels[rng.Intn(len(levels))]
			b.WriteString(fmt.Sprintf(tpl, level, rng.Intn(10000), rng.Intn(500)))
		}
		b.WriteString("\r\n")
	}

	// Un échec d'assertion en fin de journal pour tester la classification
	b.WriteString("Assertion Failed: checkpoint mismatch\r\nexpected sequence 499, observed hole at 451\r\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		fmt.Printf("❌ Erreur journal : %v\n", err)
	} else {
		fmt.Printf("📄 Journal généré : %s (%d lignes)\n", path, lines)
	}
}

// genBulkLog écrit des lignes dépassant la taille d'un chunk (4091)
// pour vérifier le découpage et le réassemblage de bout en bout
func genBulkLog(path string, lines int) {
	var b strings.Builder

	for i := 0; i < lines; i++ {
		b.WriteString(fmt.Sprintf("DEBUG: oversized payload %d ", i))
		// 6000 caractères : deux chunks garantis par ligne
		b.WriteString(strings.Repeat("abcdefghij", 600))
		b.WriteString("\r\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		fmt.Printf("❌ Erreur journal : %v\n", err)
	} else {
		fmt.Printf("📦 Journal volumineux généré : %s\n", path)
	}
}
