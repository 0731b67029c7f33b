package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banachtech/sabrmc/api"
	"github.com/banachtech/sabrmc/mc"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/rand"
)

func main() {
	serve := flag.Bool("serve", false, "run the pricing API")
	addr := flag.String("addr", "", "listen address (default SERVER_ADDRESS or :8080)")
	flag.Parse()

	// optional .env with SERVER_ADDRESS and API_KEY_HASH
	_ = godotenv.Load()

	if *serve {
		address := *addr
		if address == "" {
			address = os.Getenv("SERVER_ADDRESS")
		}
		if address == "" {
			address = ":8080"
		}
		server := api.NewServer(os.Getenv("API_KEY_HASH"))
		log.Fatal(server.Start(address))
	}

	smileStudy()
}

// smileStudy prints direct vs conditional implied vol smiles for a reference
// SABR setup across increasing path counts.
func smileStudy() {
	strikes := []float64{80, 90, 100, 110, 120}
	spot, texp := 100.0, 1.0
	paths := []int{1000, 10000, 100000}

	bar := progressBar(2 * len(paths))
	type result struct {
		nPath int
		label string
		vols  []float64
	}
	var results []result
	for _, n := range paths {
		p := mc.Params{Sigma: 0.2, Vov: 0.5, Rho: -0.25, Beta: 1.0, Dt: 0.05, NPath: n}
		for _, cond := range []bool{false, true} {
			m, err := mc.New(p, cond, rand.NewSource(42))
			if err != nil {
				log.Fatal(err)
			}
			iv, err := m.VolSmile(strikes, spot, texp, 1)
			if err != nil {
				log.Fatal(err)
			}
			label := "direct"
			if cond {
				label = "conditional"
			}
			results = append(results, result{nPath: n, label: label, vols: iv})
			bar.Add(1)
		}
	}

	fmt.Printf("%-8s %-12s smile at strikes %v\n", "n_path", "method", strikes)
	for _, r := range results {
		fmt.Printf("%-8d %-12s", r.nPath, r.label)
		for _, v := range r.vols {
			fmt.Printf(" %7.4f", v)
		}
		fmt.Println()
	}
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionSetDescription("pricing"),
	)
	return bar
}
