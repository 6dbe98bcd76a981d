package sqlinline

const templateColumns = `id, name, description, category, prompt_template, config, is_popular, usage_count, rating, created_at`

const QInsertTemplate = `--sql b09d994a-6af5-42f3-a726-3af8968c0e3c
insert into prompt_templates(name, description, category, prompt_template, config, is_popular, usage_count, rating, created_at)
values ($1::text, $2::text, $3::text, $4::text, $5::jsonb, $6::boolean, $7::int, $8::double precision, now())
returning id, created_at;
`

const QSelectTemplateByID = `--sql 34e83b4b-6fea-43e4-9518-8b19d9be632e
select ` + templateColumns + `
from prompt_templates
where id = $1::bigint
limit 1;
`

const QListTemplates = `--sql d08b6b68-5de3-4059-882a-294e629aa3e3
select ` + templateColumns + `
from prompt_templates
where $1::text = '' or category = $1::text
order by usage_count desc, id asc;
`

const QListPopularTemplates = `--sql b3727ad2-6246-45d5-8d39-7ad18a05a23c
select ` + templateColumns + `
from prompt_templates
where is_popular
order by usage_count desc, id asc;
`

// QSearchTemplates expects $1 to be a lower-cased LIKE pattern with
// metacharacters already escaped.
const QSearchTemplates = `--sql f3951437-264b-4756-9b22-d26ac4f64689
select ` + templateColumns + `
from prompt_templates
where lower(name) like $1::text escape '\'
   or lower(description) like $1::text escape '\'
   or lower(category) like $1::text escape '\'
order by usage_count desc, id asc;
`

const QIncrementTemplateUsage = `--sql 5f6ca93c-6840-42f9-930f-ab54eebbcdd6
update prompt_templates
set usage_count = usage_count + 1
where id = $1::bigint
returning ` + templateColumns + `;
`

const QCountTemplates = `--sql 3646b35a-9102-4eca-8f8f-13e300a6d166
select count(*) from prompt_templates;
`
