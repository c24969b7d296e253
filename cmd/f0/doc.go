// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command f0 prints championship tables from a season file without
starting the server.

	f0                        # title, both championships
	f0 drivers
	f0 constructors
	f0 race Imola
	f0 driver Kuba
	f0 team McLaren
	f0 progress --svg progress.svg
	f0 hash-password s3cret   # value for ADMIN_PASSWORD_HASH

Every command reads the built-in season unless --season names a YAML file.
*/
package main
