package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility
const ENV_DEV_MODE = "DEV_MODE"

// Statistics represents the collected service statistics
type Statistics struct {
	UniqueVisitors     map[string]time.Time `json:"uniqueVisitors"`     // IP -> Last Visit Time
	ValidationRequests int                  `json:"validationRequests"` // Total number of validation requests
	ErrorCount         int                  `json:"errorCount"`         // Number of errors
	GradeDistribution  map[string]int       `json:"gradeDistribution"`  // Grade -> Count
	AverageProcessTime float64              `json:"averageProcessTime"` // Average processing time in milliseconds
	TotalProcessTime   float64              `json:"-"`                  // Used to calculate average
	RequestCount       int                  `json:"-"`                  // Used to calculate average
	LastPersisted      time.Time            `json:"lastPersisted"`      // Last time stats were saved
	mutex              sync.RWMutex         `json:"-"`
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors:    make(map[string]time.Time),
			GradeDistribution: make(map[string]int),
			LastPersisted:     time.Now(),
		}

		// Try to load existing statistics
		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// TrackValidation records a validation request and the grade it produced
func (s *Statistics) TrackValidation(grade string, processTime float64, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.ValidationRequests++

	if grade != "" {
		s.GradeDistribution[grade]++
	}

	if hasError {
		s.ErrorCount++
	}

	// Update average processing time
	s.TotalProcessTime += processTime
	s.RequestCount++
	s.AverageProcessTime = s.TotalProcessTime / float64(s.RequestCount)
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}

	return count
}

// GetGradeDistribution returns a copy of the grade counts
func (s *Statistics) GetGradeDistribution() map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make(map[string]int, len(s.GradeDistribution))
	for grade, count := range s.GradeDistribution {
		result[grade] = count
	}

	return result
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.ValidationRequests == 0 {
		return 0
	}

	return (float64(s.ErrorCount) / float64(s.ValidationRequests)) * 100
}

// Save persists the statistics to a file
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create("statistics.json")
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}

	return nil
}

// Load reads the statistics from a file
func (s *Statistics) Load() error {
	file, err := os.Open("statistics.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not an error if file doesn't exist yet
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}

	return nil
}

// GetStatistics returns a copy of the current statistics. Full detail is
// only included in development mode.
func (s *Statistics) GetStatistics() map[string]interface{} {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	visitors := 0
	cutoff := time.Now().Add(-24 * time.Hour)
	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			visitors++
		}
	}

	errorRate := 0.0
	if s.ValidationRequests > 0 {
		errorRate = (float64(s.ErrorCount) / float64(s.ValidationRequests)) * 100
	}

	result := map[string]interface{}{
		"uniqueVisitors24h":    visitors,
		"totalRequests":        s.ValidationRequests,
		"errorRate":            errorRate,
		"averageProcessTimeMs": s.AverageProcessTime,
	}

	// Grade breakdown is only exposed in development mode
	if os.Getenv(ENV_DEV_MODE) == "true" {
		grades := make(map[string]int, len(s.GradeDistribution))
		for grade, count := range s.GradeDistribution {
			grades[grade] = count
		}
		result["gradeDistribution"] = grades
	}

	return result
}
