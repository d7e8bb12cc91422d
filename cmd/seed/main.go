package main

import (
	"context"
	"flag"
	"log"
	"time"

	"gorm.io/datatypes"

	"onlydevs/internal/config"
	"onlydevs/internal/db"
	"onlydevs/internal/model"
	"onlydevs/internal/store"
)

func main() {
	stats := flag.Bool("stats", false, "print store statistics instead of resetting")
	flag.Parse()

	cfg := config.Load()
	gigStore := openStore(cfg)
	ctx := context.Background()

	if *stats {
		printStats(ctx, gigStore)
		return
	}

	if err := gigStore.Reset(ctx, defaultGigs()); err != nil {
		log.Fatalf("reset store: %v", err)
	}
	log.Println("Database reset to default state with 3 test gigs and 6 mentors")
}

func openStore(cfg *config.Config) store.Store {
	switch cfg.StoreDriver {
	case config.StoreDriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		st, err := store.NewGormStore(gormDB)
		if err != nil {
			log.Fatalf("store init: %v", err)
		}
		return st
	case config.StoreDriverFile:
		return store.NewFileStore(cfg.StorePath)
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil
	}
}

func printStats(ctx context.Context, st store.Store) {
	gigs, err := st.LoadAll(ctx)
	if err != nil {
		log.Fatalf("load store: %v", err)
	}
	byStatus := map[model.GigStatus]int{}
	mentors := 0
	for _, g := range gigs {
		byStatus[g.Status]++
		mentors += len(g.Mentors)
	}
	log.Printf("gigs: %d (open=%d in-progress=%d completed=%d), mentors: %d",
		len(gigs), byStatus[model.GigStatusOpen], byStatus[model.GigStatusInProgress],
		byStatus[model.GigStatusCompleted], mentors)
}

func defaultGigs() []model.Gig {
	return []model.Gig{
		{
			ID:    "1",
			Title: "React State Management Issue",
			Description: "I'm having trouble with React state management in my component. " +
				"The state is not updating properly when I call setState. I've tried using " +
				"useState and useEffect but the component keeps re-rendering infinitely. " +
				"Need help debugging this issue.",
			Tags:      datatypes.NewJSONSlice([]string{"React", "JavaScript", "State Management"}),
			Bounty:    "15",
			Status:    model.GigStatusOpen,
			Author:    "Alice Johnson",
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Mentors: datatypes.NewJSONSlice([]model.Mentor{
				{
					ID:     "m1",
					Name:   "Sarah Chen",
					Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
					Rating: 5,
					Message: "I can help you debug this React state issue. I have 5+ years of " +
						"experience with React and have solved similar problems before.",
					Specialties: []string{"React", "JavaScript", "Frontend"},
				},
				{
					ID:     "m2",
					Name:   "Mike Rodriguez",
					Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
					Rating: 4,
					Message: "This looks like a classic dependency array problem. I can walk you " +
						"through the solution step by step.",
					Specialties: []string{"React", "Hooks", "Debugging"},
				},
			}),
		},
		{
			ID:    "2",
			Title: "Solidity Smart Contract Bug",
			Description: "My Solidity contract is not working as expected. The function is " +
				"reverting without any clear error message. I'm trying to implement a simple " +
				"ERC-20 token but the transfer function keeps failing. Need help debugging " +
				"this blockchain issue.",
			Tags:      datatypes.NewJSONSlice([]string{"Solidity", "Smart Contracts", "Ethereum"}),
			Bounty:    "25",
			Status:    model.GigStatusOpen,
			Author:    "Bob Smith",
			CreatedAt: time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
			Mentors: datatypes.NewJSONSlice([]model.Mentor{
				{
					ID:     "m3",
					Name:   "Alex Kim",
					Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
					Rating: 5,
					Message: "I specialize in Solidity smart contracts. Let me help you debug " +
						"this issue and optimize your contract.",
					Specialties: []string{"Solidity", "Smart Contracts", "Blockchain"},
				},
				{
					ID:     "m4",
					Name:   "Emma Wilson",
					Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
					Rating: 4,
					Message: "I have extensive experience with Ethereum development. I can help " +
						"you identify and fix the contract issue.",
					Specialties: []string{"Ethereum", "Smart Contracts", "Web3"},
				},
			}),
		},
		{
			ID:    "3",
			Title: "Next.js API Route Problem",
			Description: "My Next.js API route is returning 500 errors. Need help debugging the " +
				"server-side code. The route is supposed to handle user authentication but " +
				"it's failing. The error logs are not very helpful.",
			Tags:      datatypes.NewJSONSlice([]string{"Next.js", "API", "Node.js"}),
			Bounty:    "20",
			Status:    model.GigStatusInProgress,
			Author:    "Carol Davis",
			CreatedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			Mentors: datatypes.NewJSONSlice([]model.Mentor{
				{
					ID:     "m5",
					Name:   "Tom Anderson",
					Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
					Rating: 4,
					Message: "I can help you debug this Next.js API issue. Let me take a look at " +
						"your code and identify the problem.",
					Specialties: []string{"Next.js", "Node.js", "Backend"},
				},
				{
					ID:     "m6",
					Name:   "Lisa Wang",
					Avatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face",
					Rating: 5,
					Message: "I specialize in Next.js and authentication systems. I can help you " +
						"fix the API route and implement proper error handling.",
					Specialties: []string{"Next.js", "Authentication", "API Development"},
				},
			}),
		},
	}
}
