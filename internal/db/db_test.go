package db

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestOpenCreatesParentDirAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")

	gdb, err := Open(path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}()

	for _, model := range []interface{}{&User{}, &Entry{}, &BlogPost{}} {
		if !gdb.Migrator().HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}
}

func TestEnsureAdmin(t *testing.T) {
	gdb, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}()

	// blank credentials are a no-op
	if err := EnsureAdmin(gdb, " ", ""); err != nil {
		t.Fatalf("ensure admin with blank credentials: %v", err)
	}
	var count int64
	if err := gdb.Model(&User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no users, got %d", count)
	}

	if err := EnsureAdmin(gdb, "root", "secret"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	var user User
	if err := gdb.Where("username = ?", "root").First(&user).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")); err != nil {
		t.Fatalf("password not hashed correctly: %v", err)
	}

	// second call leaves the stored credentials alone
	if err := EnsureAdmin(gdb, "root", "different"); err != nil {
		t.Fatalf("ensure admin again: %v", err)
	}
	var reloaded User
	if err := gdb.Where("username = ?", "root").First(&reloaded).Error; err != nil {
		t.Fatalf("reload admin: %v", err)
	}
	if reloaded.Password != user.Password {
		t.Fatalf("password rewritten on repeat call")
	}
}

func TestIsAdmin(t *testing.T) {
	var nobody *User
	if nobody.IsAdmin() {
		t.Fatalf("nil user must not be admin")
	}
	if (&User{Role: ""}).IsAdmin() {
		t.Fatalf("role-less user must not be admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("admin role not recognized")
	}
}
