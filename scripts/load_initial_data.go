package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ticket-tracker-backend/internal/config"
	"ticket-tracker-backend/internal/database"
	"ticket-tracker-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
}

type TeamData struct {
	Name           string           `yaml:"name"`
	CreatedByEmail string           `yaml:"created_by_email"`
	Members        []TeamMemberData `yaml:"members,omitempty"`
}

type TeamMemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type BoardData struct {
	Name     string `yaml:"name"`
	TeamName string `yaml:"team_name"`
}

type TicketData struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description,omitempty"`
	BoardName      string `yaml:"board_name,omitempty"`
	Prefix         string `yaml:"prefix"`
	Num            int    `yaml:"num"`
	Status         string `yaml:"status"`
	Priority       string `yaml:"priority,omitempty"`
	Type           string `yaml:"type,omitempty"`
	CreatedByEmail string `yaml:"created_by_email"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type BoardsFile struct {
	Boards []BoardData `yaml:"boards"`
}

type TicketsFile struct {
	Tickets []TicketData `yaml:"tickets"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	boards, err := loadBoards(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load boards: %w", err)
	}

	tickets, err := loadTickets(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tickets: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create teams with their memberships
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	// Create boards
	boardMap := make(map[string]*models.Board)
	boardCreated := 0
	for _, boardData := range boards {
		board, created, err := createBoard(db, boardData, teamMap)
		if err != nil {
			log.Printf("Warning: failed to create board %s: %v", boardData.Name, err)
			continue
		}
		boardMap[boardData.Name] = board
		if created {
			boardCreated++
		}
	}
	log.Printf("Boards: %d created, %d total", boardCreated, len(boards))

	// Create tickets
	ticketCreated := 0
	for _, ticketData := range tickets {
		_, created, err := createTicket(db, ticketData, boardMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create ticket %s-%d: %v", ticketData.Prefix, ticketData.Num, err)
			continue
		}
		if created {
			ticketCreated++
		}
	}
	log.Printf("Tickets: %d created, %d total", ticketCreated, len(tickets))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadBoards(dataDir string) ([]BoardData, error) {
	var allBoards []BoardData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "boards") {
			var file BoardsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allBoards = append(allBoards, file.Boards...)
		}
		return nil
	})

	return allBoards, err
}

func loadTickets(dataDir string) ([]TicketData, error) {
	var allTickets []TicketData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tickets") {
			var file TicketsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTickets = append(allTickets, file.Tickets...)
		}
		return nil
	})

	return allTickets, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			displayName := userData.DisplayName
			email := userData.Email
			user = models.User{
				DisplayName:  &displayName,
				Email:        &email,
				PasswordHash: string(hash),
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	owner := userMap[teamData.CreatedByEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("user %s not found for team %s", teamData.CreatedByEmail, teamData.Name)
	}

	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			name := teamData.Name
			team = models.Team{
				Name:          &name,
				CreatedByUser: owner.ID,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Memberships ride along with the team definition
			for _, memberData := range teamData.Members {
				member := userMap[memberData.Email]
				if member == nil {
					log.Printf("Warning: user %s not found for team %s membership", memberData.Email, teamData.Name)
					continue
				}

				role := memberData.Role
				if role == "" {
					role = string(models.TeamMemberRoleMember)
				}
				membership := models.TeamMember{
					TeamID: &team.ID,
					UserID: &member.ID,
					Role:   &role,
				}
				if err := db.Create(&membership).Error; err != nil {
					log.Printf("Warning: failed to create membership for %s in %s: %v", memberData.Email, teamData.Name, err)
				}
			}

			return &team, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

func createBoard(db *gorm.DB, boardData BoardData, teamMap map[string]*models.Team) (*models.Board, bool, error) {
	team := teamMap[boardData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for board %s", boardData.TeamName, boardData.Name)
	}

	var board models.Board
	if err := db.Where("name = ? AND team_id = ?", boardData.Name, team.ID).First(&board).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			name := boardData.Name
			board = models.Board{
				Name:   &name,
				TeamID: &team.ID,
			}

			if err := db.Create(&board).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create board: %w", err)
			}
			return &board, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query board: %w", err)
	}

	return &board, false, nil // created = false (existing)
}

func createTicket(db *gorm.DB, ticketData TicketData, boardMap map[string]*models.Board, userMap map[string]*models.User) (*models.Ticket, bool, error) {
	creator := userMap[ticketData.CreatedByEmail]
	if creator == nil {
		return nil, false, fmt.Errorf("user %s not found for ticket", ticketData.CreatedByEmail)
	}

	key := fmt.Sprintf("%s-%d", ticketData.Prefix, ticketData.Num)

	var ticket models.Ticket
	if err := db.Where("ticket_id_str = ?", key).First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.TicketStatusTodo
			if ticketData.Status != "" {
				status = models.TicketStatus(ticketData.Status)
			}

			ticketType := models.TicketTypeTask
			if ticketData.Type != "" {
				ticketType = models.TicketType(ticketData.Type)
			}

			priority := models.TicketPriorityMedium
			if ticketData.Priority != "" {
				priority = models.TicketPriority(ticketData.Priority)
			}

			prefix := ticketData.Prefix
			num := ticketData.Num
			ticket = models.Ticket{
				Title:          ticketData.Title,
				TicketStatus:   status,
				TicketPriority: &priority,
				TicketType:     &ticketType,
				TicketNum:      &num,
				TicketPrefix:   &prefix,
				TicketIDStr:    &key,
				CreatedByUser:  creator.ID,
			}
			if ticketData.Description != "" {
				desc := ticketData.Description
				ticket.Description = &desc
			}

			// Epics float free of boards; everything else needs one
			if ticketType != models.TicketTypeEpic {
				board := boardMap[ticketData.BoardName]
				if board == nil {
					return nil, false, fmt.Errorf("board %s not found for ticket %s", ticketData.BoardName, key)
				}
				ticket.BoardID = &board.ID
			}

			if err := db.Create(&ticket).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create ticket: %w", err)
			}
			return &ticket, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query ticket: %w", err)
	}

	return &ticket, false, nil // created = false (existing)
}
