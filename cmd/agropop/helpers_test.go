package main

import (
	"github.com/agrotech/agropop/internal/config"
	"github.com/agrotech/agropop/internal/seeder"
)

func configWithAdmin(user string) config.Config {
	return config.Config{DBPath: ":memory:", AdminUser: user, AdminPass: "pw"}
}

func names(seeders []seeder.Seeder) []string {
	out := make([]string, 0, len(seeders))
	for _, s := range seeders {
		out = append(out, s.Name())
	}
	return out
}
