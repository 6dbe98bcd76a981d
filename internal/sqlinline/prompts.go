package sqlinline

const QInsertPrompt = `--sql e0dd4ebe-2d6d-4117-b5ed-2c87567df7f8
insert into generated_prompts(prompt, category, style, duration, complexity, elements, metadata, created_at)
values ($1::jsonb, $2::text, $3::text, $4::text, $5::text, $6::jsonb, $7::jsonb, now())
returning id, created_at;
`

const QSelectPromptByID = `--sql ecc54449-5972-4604-b35b-42977863a5bb
select id, prompt, category, style, duration, complexity, elements, metadata, created_at
from generated_prompts
where id = $1::bigint
limit 1;
`

const QListRecentPrompts = `--sql bba055c3-5b99-4499-a148-25256ede7db9
select id, prompt, category, style, duration, complexity, elements, metadata, created_at
from generated_prompts
order by created_at desc, id desc
limit $1::int;
`
