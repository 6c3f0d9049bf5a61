package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/locvowork/staff_attendance/internal/bootstrap"
	"github.com/locvowork/staff_attendance/internal/database"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
	"github.com/locvowork/staff_attendance/internal/repository"
)

func main() {
	action := flag.String("action", "seed", "Action to perform: seed, clear, show")
	preset := flag.String("preset", string(database.PresetDemo), "Data preset: demo, empty")
	seed := flag.Int64("seed", 0, "Random seed for demo data (overrides SEED_VALUE)")
	yes := flag.Bool("yes", false, "Skip the confirmation prompt for clear")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 Attendance Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("📡 Initializing application...")
	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application", err)
		log.Fatal(err)
	}
	defer app.Close()

	seeder := app.Seeder
	if *seed != 0 {
		seeder = database.NewDataSeeder(*seed)
	}

	switch *action {
	case "seed":
		performSeed(ctx, seeder, app.Store, database.SeedPreset(*preset))

	case "clear":
		performClear(ctx, seeder, app.Store, *yes)

	case "show":
		performShow(ctx, app.Store)

	default:
		fmt.Printf("❌ Unknown action: %s\n", *action)
		flag.PrintDefaults()
		return
	}

	fmt.Println("\n✅ Done!")
}

func performSeed(ctx context.Context, seeder *database.DataSeeder, store domain.KVStore, preset database.SeedPreset) {
	if preset != database.PresetDemo && preset != database.PresetEmpty {
		log.Fatalf("❌ Unknown preset: %s", preset)
	}
	fmt.Printf("📊 Using preset: %s\n", preset)

	staffCount, recordCount, err := seeder.SeedStore(ctx, store, preset, time.Now())
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	fmt.Printf("👥 %d staff members, 📅 %d attendance records\n", staffCount, recordCount)
}

func performClear(ctx context.Context, seeder *database.DataSeeder, store domain.KVStore, skipPrompt bool) {
	if !skipPrompt {
		fmt.Println("⚠️  This will delete all attendance data!")
		fmt.Print("Continue? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Cancelled.")
			return
		}
	}

	if err := seeder.ClearData(ctx, store); err != nil {
		log.Fatalf("❌ Clear failed: %v", err)
	}
}

func performShow(ctx context.Context, store domain.KVStore) {
	staff, found, err := repository.NewStaffRepository(store).Load(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load staff: %v", err)
	}
	if !found {
		fmt.Println("👥 No persisted staff roster")
	} else {
		fmt.Printf("👥 %d staff members\n", len(staff))
		for _, m := range staff {
			fmt.Printf("   %-38s %-16s %s\n", m.ID, m.Name, m.Department)
		}
	}

	records, found, err := repository.NewAttendanceRepository(store).Load(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load records: %v", err)
	}
	if !found {
		fmt.Println("📅 No persisted attendance records")
		return
	}

	byStatus := map[domain.AttendanceStatus]int{}
	for _, r := range records {
		byStatus[r.Status]++
	}
	fmt.Printf("📅 %d attendance records (present %d, late %d, absent %d)\n",
		len(records), byStatus[domain.StatusPresent], byStatus[domain.StatusLate], byStatus[domain.StatusAbsent])
}
