package sqlinline

// Migration is one forward-only schema step applied by cmd/migrate.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations are applied in order and recorded in schema_migrations.
var Migrations = []Migration{
	{Version: 1, Name: "generated_prompts", SQL: QCreatePrompts},
	{Version: 2, Name: "prompt_templates", SQL: QCreateTemplates},
}

const QCreateMigrationsTable = `--sql c650de07-bb9e-4b26-89cd-c0f9fb0c4a01
create table if not exists schema_migrations (
  version int primary key,
  name text not null,
  applied_at timestamptz not null default now()
);
`

const QSelectAppliedMigrations = `--sql 5da1730f-be6f-4ee3-9018-ded43cc639d9
select version from schema_migrations order by version;
`

const QRecordMigration = `--sql d3125b91-8f6c-4a81-9649-6c279d60032a
insert into schema_migrations(version, name) values ($1, $2);
`

const QCreatePrompts = `--sql 9839df96-9731-4607-8cac-b71ebd1a46d8
create table if not exists generated_prompts (
  id bigserial primary key,
  prompt jsonb not null,
  category text not null,
  style text not null,
  duration text not null,
  complexity text not null,
  elements jsonb not null default '{}'::jsonb,
  metadata jsonb not null default '{}'::jsonb,
  created_at timestamptz not null default now()
);
create index if not exists generated_prompts_created_at_idx on generated_prompts (created_at desc, id desc);
`

const QCreateTemplates = `--sql 7d41c2e8-5b0f-4a93-8e1c-64f2a9d3b7e5
create table if not exists prompt_templates (
  id bigserial primary key,
  name text not null,
  description text not null default '',
  category text not null,
  prompt_template text not null default '',
  config jsonb,
  is_popular boolean not null default false,
  usage_count int not null default 0 check (usage_count >= 0),
  rating double precision not null default 0,
  created_at timestamptz not null default now()
);
create index if not exists prompt_templates_category_idx on prompt_templates (category);
`
