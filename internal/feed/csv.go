package feed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads price and volume series from a CSV file with "price" and
// "volume" columns (header required, extra columns ignored). It lets
// workflows run offline against recorded data.
func LoadCSV(path string) (prices, volumes []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open seed csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	priceCol, volumeCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "price", "close":
			priceCol = i
		case "volume", "qty":
			volumeCol = i
		}
	}
	if priceCol < 0 || volumeCol < 0 {
		return nil, nil, fmt.Errorf("csv header %v missing price/volume columns", header)
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv rows: %w", err)
	}

	prices = make([]float64, 0, len(records))
	volumes = make([]float64, 0, len(records))
	for i, rec := range records {
		p, err := strconv.ParseFloat(rec[priceCol], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad price %q: %w", i+1, rec[priceCol], err)
		}
		v, err := strconv.ParseFloat(rec[volumeCol], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: bad volume %q: %w", i+1, rec[volumeCol], err)
		}
		prices = append(prices, p)
		volumes = append(volumes, v)
	}
	return prices, volumes, nil
}
