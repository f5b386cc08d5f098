package main

import (
	"alcyxob/gym-registry/internal/config"
	"alcyxob/gym-registry/internal/logger"
	"alcyxob/gym-registry/internal/repository/memory"
	"alcyxob/gym-registry/internal/service"
	"log"
	"os"
	"time"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	appLog, err := logger.New(cfg.Log, os.Stdout)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	appLog.Info("configuration loaded", "log_level", cfg.Log.Level)

	seed, err := cfg.Seed.Build(time.Now())
	if err != nil {
		appLog.Error("invalid seed data", "error", err)
		os.Exit(1)
	}

	// --- Registry ---
	store := memory.NewDataStore()
	registry := service.NewRegistryService(store, appLog)

	for _, f := range seed.Facilities {
		registry.AddFacility(f)
	}
	for _, m := range seed.Members {
		if err := registry.RegisterMember(m); err != nil {
			appLog.Warn("skipping seed member", "member", m.String(), "error", err)
		}
	}
	for _, t := range seed.Trainers {
		appLog.Info("staff", "entry", t.String())
	}
	for _, a := range seed.Administrators {
		appLog.Info("staff", "entry", a.String())
	}

	// --- Summary ---
	appLog.Info("registry ready", "members", store.MemberCount(), "facilities", store.FacilityCount())
	for _, f := range registry.ListFacilities() {
		appLog.Info("facility", "entry", f.String())
	}
	for _, m := range registry.ListMembers() {
		allowed, err := registry.AccessibleFacilities(m.DigitalID)
		if err != nil {
			appLog.Error("lookup failed", "digital_id", m.DigitalID, "error", err)
			continue
		}
		names := make([]string, 0, len(allowed))
		for _, f := range allowed {
			names = append(names, f.Name)
		}
		appLog.Info("member",
			"entry", m.String(),
			"membership", m.Membership.String(),
			"active", m.Membership.Active,
			"can_register", m.CanRegister(),
			"premium", m.CanAccessPremium(),
			"schedules", len(m.Schedules),
			"facilities", names,
		)
	}
}
