// Code generated from a deterministic syllable-combination generator; do not hand-edit.
// Every word is 3-8 lowercase ASCII characters, and the first four characters of
// every word of length >= 4 are unique across the whole list.
package mnemonic

// words is the canonical 4096-word table (component A). Its contents are a
// compatibility contract: changing any entry changes every mnemonic phrase
// ever produced by this package.
var words = [WordCount4096]string{
	"back", "baik", "bailk", "bain", "baip", "bairt", "bais", "bait",
	"baize", "bam", "band", "bank", "bard", "bas", "basp", "bax",
	"bay", "bayb", "bayck", "bayd", "bayll", "baym", "bayng", "bayrn",
	"baysh", "bayt", "bayx", "bayze", "beack", "beaft", "beak", "beald",
	"beant", "bearp", "beasp", "beath", "beaze", "bee", "beeb", "beeft",
	"beell", "beep", "beerk", "beet", "beeze", "beft", "beg", "belk",
	"beng", "bent", "bep", "berd", "berp", "bes", "besp", "bet",
	"bex", "beyck", "beylk", "beyn", "beyr", "beysp", "beyx", "bil",
	"bill", "bim", "bin", "bink", "bird", "birk", "birp", "birt",
	"bis", "bisk", "bit", "black", "blad", "blairk", "blak", "blald",
	"blan", "blap", "blarp", "blask", "blath", "blaylt", "blaze", "blear",
	"bleb", "bled", "bleenk", "blek", "bleld", "blem", "bleng", "blesk",
	"bleth", "bleyg", "bleze", "bli", "blib", "blil", "blink", "blir",
	"blit", "bloaint", "bloeam", "blog", "bloing", "blolk", "blond", "blooald",
	"blorp", "blos", "blour", "blowp", "bloyx", "bluck", "blul", "blum",
	"blun", "blurt", "blush", "bluth", "blux", "boaft", "boak", "boalt",
	"boap", "boar", "boash", "boath", "boaze", "bok", "bold", "bolk",
	"boll", "bom", "bon", "boog", "book", "boolk", "boonk", "boop",
	"boorn", "boost", "boot", "boox", "booze", "bord", "bork", "bosk",
	"bot", "bou", "boud", "bouft", "bounk", "boup", "bourt", "bousp",
	"boux", "bow", "bowb", "bowck", "bowk", "bowlk", "bownt", "bowp",
	"bowrn", "boyck", "boyd", "boyld", "boym", "boynd", "boyp", "boysp",
	"boyt", "boyx", "boyze", "boze", "bra", "braill", "bram", "brank",
	"brarp", "brash", "brat", "brayok", "breald", "breesk", "breft", "breg",
	"brek", "brel", "brend", "brep", "brert", "bresh", "brex", "breyoyrk",
	"brib", "bring", "brip", "brirt", "brit", "brize", "broalt", "brolt",
	"bronk", "broont", "brort", "brost", "brot", "brourn", "brown", "broym",
	"bru", "brud", "bruft", "bruld", "brun", "brurp", "brush", "bug",
	"buk", "buld", "bull", "bun", "bung", "bur", "burk", "bush",
	"but", "cad", "cai", "caik", "cain", "caip", "caird", "cais",
	"cait", "caize", "calk", "calt", "cam", "can", "cand", "cant",
	"cap", "cart", "cash", "cask", "casp", "cat", "cath", "cayll",
	"caym", "caynk", "cayrp", "caysk", "caze", "ceak", "cealt", "ceam",
	"ceank", "ceap", "ceark", "ceast", "ceax", "ceed", "ceeld", "ceeng",
	"ceerd", "ceesp", "ceex", "ceg", "cek", "celd", "celk", "cell",
	"cem", "ceng", "cep", "cern", "cert", "cesk", "ceth", "cey",
	"ceyft", "ceyld", "ceyn", "ceyrd", "ceys", "ceyth", "chad", "chaib",
	"chak", "chald", "chand", "chark", "chask", "chat", "chax", "chayx",
	"cheaft", "cheb", "ched", "cheearn", "cheg", "chelt", "cheng", "chern",
	"ches", "cheyk", "chi", "chick", "chift", "chilk", "chirt", "chis",
	"chith", "choap", "chob", "chock", "choft", "chok", "cholk", "chond",
	"choort", "chort", "chosk", "chousk", "chowrt", "chox", "choysp", "chu",
	"chud", "chug", "chulk", "chund", "chur", "chuth", "ciad", "ciailk",
	"ciak", "cialt", "ciam", "ciank", "ciap", "ciark", "ciat", "ciax",
	"ciayp", "cib", "cieark", "cieb", "cieeng", "ciell", "ciend", "cierd",
	"ciest", "cieyk", "cieze", "ciift", "ciik", "ciill", "ciink", "ciir",
	"ciisp", "ciith", "ciix", "ciize", "cik", "cind", "cing", "cioag",
	"cioft", "ciok", "ciol", "ciom", "cion", "cioock", "cior", "ciosh",
	"ciot", "ciourp", "ciowr", "ciox", "cioynt", "cip", "cir", "cird",
	"cirn", "cirt", "cish", "cisk", "ciub", "ciuck", "ciuft", "ciult",
	"ciurt", "ciush", "ciut", "ciux", "cix", "clab", "clack", "claft",
	"clail", "clalt", "clan", "clap", "clark", "clas", "clays", "cle",
	"clearp", "cleck", "cleend", "clelk", "cleyx", "cleze", "cli", "clib",
	"click", "clik", "clilt", "clim", "clind", "clird", "clit", "clix",
	"clize", "clo", "cloam", "clock", "clok", "clold", "clon", "cloork",
	"clord", "cloust", "clowld", "cloyrd", "cloze", "cluck", "clud", "cluk",
	"clul", "clum", "clun", "clurk", "clusp", "clut", "clux", "coa",
	"coaap", "coad", "coaert", "coaft", "coaip", "coalk", "coant", "coaoult",
	"coap", "coasp", "coauze", "cob", "cock", "cod", "coft", "col",
	"cold", "coll", "con", "cond", "cong", "conk", "cont", "cooayft",
	"cooes", "cooig", "cool", "coont", "cooowrn", "coop", "coorp", "coosh",
	"coould", "cooze", "cop", "cor", "cos", "cosk", "cosp", "coth",
	"coub", "coul", "cound", "coup", "court", "cout", "cow", "cowck",
	"cowd", "cowlt", "cowrk", "cowst", "coy", "coyft", "coyk", "coyl",
	"coynd", "coyrt", "coysh", "coyth", "craind", "crak", "crall", "cram",
	"cran", "crarp", "crash", "crax", "crayr", "craze", "creap", "crees",
	"crenk", "crer", "cresp", "creyze", "crick", "crilt", "crin", "crip",
	"crirk", "crisp", "crit", "crix", "crize", "cro", "croal", "crod",
	"crol", "crond", "croosh", "crop", "crord", "cros", "crot", "croub",
	"crowlk", "croyig", "croze", "cruld", "crund", "crurt", "crust", "crut",
	"culk", "cull", "cum", "cun", "cund", "cunk", "cup", "cush",
	"cut", "cux", "dab", "dack", "dad", "dai", "daib", "daick",
	"dailk", "daim", "daint", "dairn", "daisp", "dait", "dal", "dam",
	"dard", "dark", "darn", "das", "dask", "dat", "dath", "dax",
	"day", "dayd", "dayk", "daylk", "daynt", "dayp", "dayrt", "dayst",
	"dayt", "dea", "dead", "deaft", "deag", "deak", "deal", "deap",
	"dearp", "death", "deb", "deck", "deeb", "deeg", "deeld", "deend",
	"deep", "deer", "deesk", "deet", "deld", "denk", "der", "dern",
	"dert", "desh", "det", "dey", "deyck", "deyd", "deyft", "deyk",
	"deyll", "deyn", "deyrt", "deyst", "deze", "dick", "did", "dift",
	"dig", "dil", "dim", "din", "dip", "dirk", "dirp", "dis",
	"dish", "disk", "disp", "dit", "dith", "dix", "dize", "doad",
	"doalk", "doang", "doarp", "doas", "doaze", "dob", "dock", "doft",
	"dog", "dok", "dold", "doll", "don", "dond", "donk", "dont",
	"doock", "dooft", "doog", "dook", "doold", "doong", "doord", "doosk",
	"dooze", "dop", "dor", "dorn", "dosh", "dost", "dou", "douk",
	"dould", "doung", "dourd", "doust", "dow", "dowd", "dowk", "dowlt",
	"dowm", "downd", "dowrd", "dowst", "dowx", "dowze", "doyd", "doyg",
	"doyld", "doym", "doynt", "doyr", "doysh", "doyt", "drack", "draix",
	"dralt", "dram", "drand", "drart", "dras", "drat", "drayt", "draze",
	"dream", "dreck", "dred", "dreet", "drek", "drell", "drem", "drent",
	"drerp", "dresk", "dret", "dreyt", "dri", "drib", "drig", "drik",
	"dril", "drind", "drirn", "drisk", "drith", "droab", "drock", "drold",
	"drom", "dron", "droom", "drorn", "dros", "drouck", "drownd", "droyg",
	"druk", "druld", "drum", "drung", "drurd", "drusp", "drux", "dud",
	"duft", "dul", "duld", "dult", "dun", "dung", "dus", "dusk",
	"dust", "fack", "fag", "fai", "faig", "faik", "faild", "faint",
	"faip", "faird", "faith", "faize", "falk", "falt", "fam", "fard",
	"fark", "fasp", "fath", "fax", "fayck", "fayng", "fayp", "fayst",
	"faze", "fea", "feab", "feack", "fead", "feaist", "feak", "fealk",
	"fean", "feart", "feask", "feath", "feax", "feayn", "feck", "fee",
	"feeax", "feed", "feeeft", "feeft", "feeg", "feel", "feen", "feesk",
	"feet", "feeysk", "feick", "feik", "feild", "feing", "feirp", "feisp",
	"feith", "feix", "feld", "felk", "fell", "feoalk", "feod", "feoft",
	"feok", "feol", "feon", "feoos", "feord", "feost", "feot", "feout",
	"feowng", "feoylk", "feoze", "fep", "ferk", "fern", "fert", "fesp",
	"feub", "feud", "feul", "feunt", "feurd", "feush", "feuth", "feux",
	"feuze", "feyb", "feyck", "feyft", "feyk", "feyl", "feyn", "feyrn",
	"feys", "feyt", "feyx", "feyze", "fib", "fik", "fild", "filk",
	"filt", "fin", "fing", "fink", "firk", "fist", "fit", "fix",
	"flack", "flad", "flaft", "flaiaist", "flalk", "fland", "flap", "flask",
	"flat", "flaysh", "flaze", "fle", "flea", "fleb", "fleem", "flek",
	"flell", "flen", "flerk", "flet", "fleys", "flick", "flift", "flig",
	"flilt", "fling", "flip", "flirp", "floa", "floft", "flog", "flolk",
	"flom", "flon", "floop", "flor", "flosh", "flot", "flouig", "flowt",
	"floyft", "flud", "flug", "fluld", "flup", "flurn", "flusp", "fluth",
	"flux", "foaft", "foal", "foang", "foar", "foask", "foat", "foaze",
	"fock", "fod", "foft", "fog", "fok", "fol", "fold", "folk",
	"folt", "fom", "foo", "food", "fook", "foolt", "foond", "foop",
	"foor", "foost", "foot", "fooze", "for", "fork", "forn", "forp",
	"fort", "fost", "fouck", "fouk", "foulk", "found", "foup", "four",
	"foush", "foux", "fowld", "fowng", "fowrd", "fows", "fowth", "fowx",
	"foy", "foyll", "foynt", "foyrd", "foyst", "foze", "fra", "fraad",
	"frack", "frad", "fraeer", "frail", "frak", "fralk", "fram", "frang",
	"fraoon", "frap", "frarn", "fraum", "frayft", "fraze", "fre", "freap",
	"freb", "fred", "freesp", "freg", "freld", "frent", "frep", "frerk",
	"frest", "freysp", "freze", "frik", "frill", "frin", "frir", "frit",
	"frize", "fro", "froan", "frob", "frold", "fronk", "froorn", "frorp",
	"frosh", "frot", "frouk", "frowg", "froyze", "fru", "frub", "frug",
	"frulk", "frum", "frund", "frurk", "frust", "fruze", "ful", "full",
	"fur", "fus", "fush", "fusp", "fut", "gack", "gaft", "gai",
	"gaid", "gaift", "gaik", "gailk", "gain", "gaird", "gait", "gak",
	"gald", "gall", "gan", "garn", "garp", "gart", "gas", "gash",
	"gath", "gayb", "gayck", "gayd", "gayft", "gayg", "gaynt", "gayrp",
	"gaysp", "gayt", "gaze", "geaft", "geak", "gealk", "geam", "geart",
	"geash", "geaze", "ged", "geeb", "geeck", "geek", "geern", "geesp",
	"gek", "geld", "gell", "gend", "geng", "ger", "gerp", "get",
	"geth", "geyck", "geyg", "geyk", "geylk", "geym", "geyrk", "geysk",
	"geyth", "geyze", "gib", "gid", "gig", "gin", "girt", "gis",
	"gisk", "gisp", "gist", "glab", "glack", "glaft", "glag", "glai",
	"glalt", "gland", "glas", "glath", "glayck", "gleaft", "gleep", "glek",
	"glel", "glep", "glesk", "gleylk", "glib", "glick", "glid", "glilk",
	"gling", "glip", "glirp", "glis", "glith", "glix", "gloask", "glob",
	"glock", "glog", "glon", "gloost", "glork", "glosh", "gloth", "gloux",
	"glowlt", "gloys", "glug", "glum", "glun", "glurd", "glust", "glux",
	"gluze", "goa", "goad", "goalk", "goank", "goarp", "goash", "goax",
	"god", "golk", "gont", "goo", "goog", "gook", "gooll", "goom",
	"goont", "goot", "goox", "gop", "gosh", "gouck", "goud", "gouft",
	"goug", "gould", "gounk", "gourk", "goush", "gout", "gouze", "gowck",
	"gowd", "gowld", "gownt", "gowp", "gowrp", "gowsp", "gowt", "gowze",
	"goyairp", "goyd", "goyeer", "goyft", "goyirp", "goyll", "goynt", "goyoum",
	"goyrt", "goysp", "goyuft", "grab", "grad", "grag", "graize", "grak",
	"grald", "gram", "grank", "grark", "grask", "grath", "grax", "grayth",
	"gre", "greask", "greeowsp", "grell", "grent", "grep", "gresh", "grex",
	"greyd", "greze", "grig", "gril", "grim", "grink", "grish", "grit",
	"grix", "groark", "grob", "grod", "grolt", "grong", "grooze", "grop",
	"grork", "grosh", "groth", "groug", "growx", "groyp", "gru", "grub",
	"gruk", "gruld", "grun", "grurd", "grus", "gruze", "gud", "gug",
	"gul", "gulk", "gun", "gung", "gup", "gur", "gurp", "gurt",
	"gut", "gux", "hack", "hai", "haid", "haift", "haill", "hain",
	"haip", "hairt", "haist", "haith", "hak", "han", "hap", "hash",
	"hat", "hayb", "hayck", "hayft", "hayg", "haylk", "haym", "haynt",
	"hayr", "hayst", "hayth", "hea", "head", "heail", "heall", "heam",
	"heang", "hear", "heast", "heat", "heax", "heaysk", "heaze", "hee",
	"heear", "heeck", "heed", "heeeft", "heeld", "heem", "heend", "heep",
	"heerd", "heex", "heeyb", "heft", "heg", "heick", "heid", "heil",
	"heim", "heirp", "heisp", "heit", "heix", "heize", "hem", "hen",
	"heng", "henk", "heoalk", "heob", "heod", "heoll", "heon", "heoos",
	"heord", "heos", "heot", "heoun", "heowm", "heox", "heoyg", "het",
	"heud", "heug", "heuld", "heum", "heunk", "heusk", "heut", "heyck",
	"heyd", "heyft", "heyk", "heyll", "heym", "heynk", "heyr", "heyst",
	"heyt", "heze", "hift", "hild", "hilk", "hill", "hip", "hir",
	"hirk", "hirn", "his", "hish", "hisk", "hisp", "hist", "hit",
	"hith", "hoack", "hoag", "hoak", "hoald", "hoam", "hoant", "hoarn",
	"hoas", "hoax", "hoaze", "hob", "hod", "hold", "holl", "hon",
	"hood", "hoog", "hook", "hooll", "hoonk", "hoop", "hoorn", "hooth",
	"hor", "hord", "horn", "horp", "hosh", "host", "hoth", "hou",
	"houft", "hoult", "houm", "hount", "houp", "houth", "houze", "how",
	"howb", "howck", "howd", "howft", "howk", "howlk", "howm", "hownd",
	"howst", "howt", "hox", "hoyft", "hoyld", "hoynd", "hoyr", "hoyst",
	"hoyt", "hoyze", "hoze", "huck", "hulk", "hung", "hur", "hurk",
	"hurp", "hush", "husk", "hut", "hux", "jaick", "jaid", "jaig",
	"jaild", "jaim", "jaing", "jairt", "jait", "jaize", "jal", "jald",
	"jand", "jang", "jank", "jap", "jar", "jarp", "jash", "jat",
	"jay", "jayg", "jayld", "jaym", "jaynk", "jayrd", "jaysk", "jayth",
	"jayze", "jea", "jead", "jeaft", "jeald", "jeank", "jeap", "jeart",
	"jeasp", "jeeg", "jeek", "jeel", "jeen", "jeern", "jeesp", "jeft",
	"jelt", "jenk", "jep", "jes", "jeth", "jex", "jey", "jeyck",
	"jeyk", "jeyld", "jeynt", "jeyr", "jeysp", "jeyx", "jeyze", "jick",
	"jil", "jild", "jilk", "jill", "jind", "jink", "jip", "jis",
	"jit", "jix", "joab", "joaft", "joak", "joal", "joam", "joand",
	"joarp", "joax", "jock", "jold", "joll", "jom", "jon", "jong",
	"jonk", "joo", "jood", "jooft", "jool", "joond", "joord", "joost",
	"jorn", "jost", "jot", "joth", "joud", "joug", "jour", "jousk",
	"joux", "jouze", "jow", "jowd", "jowft", "jowg", "jowl", "jownt",
	"jowr", "jows", "jowth", "jowx", "jowze", "joyb", "joyft", "joyk",
	"joyld", "joynd", "joyr", "joysk", "joyx", "julk", "jum", "jund",
	"jung", "junk", "junt", "jup", "jurn", "jusk", "jusp", "just",
	"juze", "kack", "kailk", "kaip", "kairt", "kait", "kak", "kall",
	"kalt", "kan", "kank", "kant", "kar", "karn", "kart", "kast",
	"kath", "kay", "kayck", "kayg", "kayl", "kaynt", "kayrd", "kaysp",
	"kaze", "kea", "kealt", "keam", "keank", "keas", "keat", "keaze",
	"keb", "keeck", "keell", "keend", "keerp", "keest", "keex", "keft",
	"kek", "kel", "kell", "kem", "ken", "kend", "ker", "kert",
	"kesp", "keth", "key", "keyft", "keyg", "keyld", "keym", "keynk",
	"keyrk", "keysp", "keyt", "keyx", "kib", "kick", "kift", "kig",
	"kik", "kild", "kin", "kint", "kirp", "kish", "kisk", "kist",
	"koab", "koag", "koal", "koam", "koang", "koarp", "koask", "koat",
	"kob", "kod", "kog", "kok", "koll", "kond", "kong", "konk",
	"koo", "koob", "kood", "kool", "koom", "koon", "koork", "koosh",
	"koot", "kos", "kosh", "kosp", "kost", "koth", "kouck", "koug",
	"koul", "kounk", "koup", "kourk", "koush", "kowng", "kowp", "kowr",
	"kows", "kowx", "kowze", "kox", "koyg", "koym", "koynk", "koyrp",
	"koyst", "koze", "kub", "kug", "kung", "kurt", "kush", "kusk",
	"kuze", "lack", "laib", "laid", "laift", "laild", "laink", "laip",
	"lairt", "laisk", "laith", "lak", "lal", "lalk", "lalt", "lan",
	"land", "lank", "lant", "lap", "larn", "las", "layb", "layk",
	"layll", "laynk", "layrt", "laysp", "layt", "layze", "lead", "leaft",
	"leak", "lean", "learn", "leask", "lee", "leeb", "leeck", "leed",
	"leel", "leent", "leep", "leerk", "leeth", "lel", "lelk", "lell",
	"lelt", "lep", "ler", "lerk", "lern", "lert", "lesh", "lesk",
	"let", "leth", "ley", "leyag", "leyb", "leyeam", "leyft", "leyish",
	"leylk", "leyng", "leyourn", "leyrk", "leyst", "leyust", "lib", "lik",
	"lill", "lim", "lind", "lip", "lird", "lirk", "lirp", "lirt",
	"lis", "lish", "loag", "loalk", "loam", "loar", "loash", "loath",
	"log", "lok", "lolk", "lom", "lon", "long", "lood", "loog",
	"looll", "loom", "loont", "loor", "loosp", "looth", "lop", "lord",
	"lork", "los", "losh", "losp", "lou", "loud", "loug", "loull",
	"lounk", "lourt", "lousk", "lout", "lowb", "lowft", "lowld", "lownd",
	"lowrn", "lowsh", "lowt", "lox", "loy", "loyb", "loyg", "loyld",
	"loynd", "loyp", "loyrd", "loysh", "loze", "lud", "lund", "lup",
	"lur", "lurn", "lus", "lush", "lusk", "lut", "luth", "maid",
	"mailk", "maing", "maird", "maisp", "mait", "mal", "malk", "mall",
	"mang", "mank", "map", "mard", "marn", "math", "mayd", "mayl",
	"mayng", "mayp", "mayr", "maysh", "mayt", "maze", "meab", "meag",
	"meall", "meank", "meart", "meax", "meck", "med", "mee", "meeck",
	"meed", "meeg", "meell", "meert", "meet", "meeze", "meft", "meg",
	"melk", "melt", "mer", "merk", "mesh", "met", "meth", "mex",
	"meyd", "meyld", "meynk", "meysp", "meyx", "meyze", "mik", "mil",
	"mild", "milk", "mim", "mip", "mir", "mis", "mit", "mize",
	"moalt", "moank", "moap", "moard", "moas", "moath", "mog", "moll",
	"molt", "mon", "mooft", "mook", "moom", "moonk", "moorp", "moos",
	"mooth", "mor", "mot", "mou", "mouayst", "moub", "moueag", "mouird",
	"mould", "moung", "mouoyk", "moup", "mour", "mousk", "mout", "mouus",
	"mowk", "mowll", "mowm", "mownk", "mowp", "mows", "mowt", "mowze",
	"mox", "moy", "moyail", "moyck", "moyd", "moyeylk", "moyg", "moyird",
	"moyk", "moyld", "moyn", "moyoolt", "moyrk", "moysh", "moyt", "moyuld",
	"moyze", "muft", "mug", "mult", "mup", "murd", "murp", "murt",
	"muth", "mux", "nack", "nad", "nai", "naid", "naift", "naik",
	"nailk", "naim", "naint", "nairt", "nais", "nalt", "nam", "nan",
	"nank", "nar", "nard", "narn", "nart", "nas", "nash", "nayft",
	"nayk", "naylk", "naynt", "nayp", "nayrk", "nayst", "nayt", "naze",
	"nea", "neab", "nead", "neal", "neank", "neap", "neart", "neash",
	"neaze", "neck", "ned", "neeb", "neeng", "neep", "neert", "neex",
	"nem", "nep", "nest", "nex", "neyb", "neyd", "neylk", "neynt",
	"neyp", "neyrd", "neyst", "neyt", "nick", "nilk", "nill", "nind",
	"nink", "nip", "nir", "nird", "nirn", "nirt", "nis", "nish",
	"nisk", "nisp", "noack", "noaft", "noak", "noant", "noap", "noard",
	"noast", "nod", "nog", "nol", "nolt", "non", "nond", "nong",
	"nood", "noor", "noost", "nork", "nos", "nosk", "nost", "not",
	"noth", "noub", "nouck", "nouft", "noug", "nould", "nount", "nourt",
	"nous", "noux", "nowld", "nowng", "nowrd", "nowsh", "noyb", "noyd",
	"noylt", "noym", "noynd", "noyp", "noyrp", "noysk", "nug", "nuld",
	"nult", "num", "nund", "nunk", "nurk", "nux", "pab", "paft",
	"pag", "paib", "paick", "paik", "paill", "paink", "pairk", "paisk",
	"pall", "palt", "pang", "park", "parn", "pasp", "pat", "pax",
	"payk", "paynd", "payr", "payst", "payt", "payze", "paze", "pea",
	"peab", "pealt", "pean", "peap", "peark", "peask", "peat", "peck",
	"ped", "peeck", "peeft", "peek", "peelk", "peem", "peent", "peerd",
	"pek", "pel", "peld", "pell", "peng", "penk", "pent", "per",
	"perk", "perp", "pert", "pesh", "pey", "peyft", "peyg", "peyll",
	"peyn", "peyp", "peyrp", "peysp", "peyx", "peze", "pid", "pik",
	"pild", "pin", "pip", "pir", "pirk", "pis", "pisp", "pit",
	"pith", "pix", "plab", "plack", "plaft", "plaith", "plak", "plalt",
	"pland", "plart", "plask", "plat", "playnd", "plaze", "pleak", "pled",
	"pleest", "pleft", "plek", "plell", "plenk", "plerp", "plesk", "plet",
	"pleyx", "plick", "plid", "plift", "plilt", "pling", "plirp", "plish",
	"plize", "plo", "ploang", "ploll", "plong", "plooll", "plop", "plort",
	"plos", "plot", "plourt", "plows", "ployk", "ploze", "pluck", "plud",
	"plug", "pluld", "plum", "plunk", "plurd", "plusk", "pluth", "plux",
	"pluze", "poack", "poad", "poaft", "poag", "poak", "poalt", "poam",
	"poant", "poarn", "poash", "poat", "pob", "polk", "polt", "pont",
	"poob", "pook", "poon", "poop", "poorp", "poos", "pooze", "posh",
	"post", "pouck", "poug", "poull", "pounk", "pourt", "pousp", "poux",
	"pow", "powg", "powk", "powld", "pownk", "powr", "powsk", "powt",
	"pox", "poy", "poyb", "poyft", "poyk", "poylk", "poym", "poyng",
	"poyp", "poyrn", "poyt", "poyze", "poze", "pra", "prab", "prack",
	"praith", "prak", "pralk", "prang", "prap", "prark", "prax", "praym",
	"preas", "preesp", "preft", "prelk", "prend", "prerp", "pret", "preysp",
	"preze", "prift", "prig", "prilt", "prim", "prink", "prip", "prirn",
	"prisk", "proang", "prog", "prolk", "pront", "proort", "pror", "prosk",
	"proull", "prowt", "proyt", "proze", "prud", "prult", "prum", "prun",
	"prur", "prust", "pruth", "prux", "puck", "puk", "pum", "pund",
	"pung", "punt", "pup", "pur", "purt", "pus", "pusk", "pust",
	"quab", "quack", "quaft", "quaize", "quall", "quant", "quarn", "quash",
	"quaysh", "que", "queask", "queck", "queer", "quelt", "quem", "quend",
	"quep", "quer", "quest", "quet", "quex", "queyrp", "quik", "quild",
	"quin", "quip", "quirn", "quisp", "quit", "quize", "quoak", "quod",
	"quog", "quooll", "quop", "quor", "quout", "quownd", "quoyll", "quuck",
	"quul", "quund", "quur", "quusp", "quut", "rab", "rack", "raft",
	"raick", "raild", "raim", "raind", "raird", "raize", "ran", "rang",
	"rank", "rant", "rard", "rarp", "ras", "rask", "rath", "rayck",
	"rayl", "raym", "raynk", "rayp", "rayrt", "raysk", "rayze", "realk",
	"rean", "reap", "reard", "red", "ree", "reeb", "reed", "reeld",
	"reenk", "reern", "reeth", "reex", "reeze", "reg", "rel", "relt",
	"reng", "renk", "rer", "resh", "reth", "reyk", "reyll", "reyng",
	"reyrd", "reysk", "reyth", "reyx", "reyze", "rid", "rift", "rild",
	"rim", "rind", "ring", "rink", "rint", "rir", "rirk", "rirt",
	"ris", "risk", "roairn", "roak", "roalt", "roam", "roang", "roap",
	"roas", "roath", "roax", "roayr", "roaze", "rob", "rock", "roeard",
	"roeck", "roeend", "roeft", "roelt", "roenk", "roesp", "roeylk", "roft",
	"roib", "roig", "roik", "roing", "roir", "roist", "ronk", "ront",
	"roo", "rooask", "rool", "roond", "rooonk", "roop", "roort", "roost",
	"rooth", "rooust", "roowrt", "rooynk", "rort", "rosh", "rosk", "rou",
	"rouck", "roud", "rouk", "rould", "rounk", "rourd", "roush", "rout",
	"roux", "rouze", "rowck", "rowg", "rowld", "rownt", "rowp", "rowrp",
	"rowsh", "rowx", "royb", "royd", "royk", "royll", "roynk", "roys",
	"ruft", "ruk", "ruld", "rulk", "rum", "run", "rund", "rung",
	"rup", "rurp", "rurt", "rusk", "rust", "rut", "ruth", "rux",
	"sack", "sad", "saft", "sag", "sai", "saib", "saick", "saig",
	"saild", "saim", "saink", "saip", "saird", "saish", "saith", "sald",
	"salk", "sam", "san", "sand", "sang", "sank", "sard", "sark",
	"sarn", "sask", "sast", "sath", "sayaylt", "sayeerd", "sayft", "sayg",
	"sayirn", "saynd", "sayows", "sayr", "saysh", "sayt", "sayurd", "scab",
	"scack", "scad", "scair", "scald", "scam", "scank", "scap", "scart",
	"scas", "scat", "scayond", "scaze", "scealt", "sceb", "sceesk", "sceg",
	"scelk", "scep", "scerk", "scesp", "scex", "sceyr", "scib", "scick",
	"scig", "scim", "scink", "scip", "scirt", "scish", "scoan", "scob",
	"scog", "scolt", "scon", "scooll", "scop", "scor", "scosp", "scout",
	"scowt", "scoyrt", "scud", "sculd", "scunt", "scur", "scus", "seab",
	"seack", "seag", "seall", "seam", "seant", "searn", "seask", "seb",
	"seck", "see", "seeb", "seeck", "seek", "seell", "seem", "seeng",
	"seep", "seerp", "seest", "seeth", "seeze", "seg", "sell", "sen",
	"send", "seng", "senk", "sep", "ser", "serp", "ses", "seyb",
	"seyck", "seyft", "seyl", "seynk", "seyrt", "seysk", "seyt", "seze",
	"sha", "shab", "shad", "shairk", "shalt", "sham", "shand", "sharp",
	"shash", "shath", "shax", "shayll", "shaze", "she", "sheayd", "sheeath",
	"sheft", "sheild", "shem", "shend", "sheowlk", "sherp", "shesk", "sheux",
	"sheyll", "shi", "shik", "shil", "shind", "shirt", "shis", "shoaize",
	"shob", "shock", "shod", "shoeell", "shoft", "shog", "shoid", "shol",
	"shond", "shoowck", "shorn", "shos", "shot", "shourd", "showm", "shoyeend",
	"shub", "shud", "shuk", "shull", "shum", "shurk", "shusp", "sig",
	"sil", "sild", "sirp", "sish", "sisk", "sisp", "sist", "sit",
	"ska", "skack", "skait", "skak", "skall", "skark", "skast", "skat",
	"skayp", "skeang", "skeb", "skeep", "skeg", "skell", "skenk", "skep",
	"skes", "sketh", "skeylk", "skick", "skik", "skil", "skint", "skirt",
	"skisk", "skoalk", "skod", "skoft", "skog", "skold", "skont", "skoond",
	"skork", "skosh", "skot", "skoum", "skowlt", "skoyl", "skud", "skuft",
	"skull", "skunt", "skup", "skurt", "skust", "skuth", "sla", "slaft",
	"slaize", "slald", "slam", "slang", "slap", "slart", "slas", "slayl",
	"sleall", "sleb", "sleelt", "slelk", "slenk", "slerk", "slesh", "sleth",
	"sleyp", "slib", "slig", "slim", "sling", "slird", "slis", "slize",
	"slo", "sloack", "slob", "slold", "slom", "slonk", "slooft", "slord",
	"slosh", "sloth", "slousp", "slowl", "sloyrd", "sloze", "sluck", "slull",
	"slunk", "slurk", "slust", "slut", "smad", "smag", "smaid", "smak",
	"small", "smam", "smant", "smap", "smar", "smasp", "smat", "smayng",
	"smeang", "smeb", "smeeck", "smeld", "sment", "smern", "smesh", "smex",
	"smeyrt", "smiayl", "smick", "smieck", "smig", "smiirk", "smin", "smiorp",
	"smip", "smird", "smis", "smith", "smiusk", "smoaze", "smock", "smoft",
	"smok", "smon", "smoox", "smop", "smort", "smos", "smot", "smoux",
	"smowk", "smoyft", "smoze", "smub", "smud", "smuk", "smulk", "smunk",
	"smurd", "smush", "smut", "smux", "snab", "snack", "snaip", "snald",
	"snand", "snar", "snask", "snath", "snaynk", "snead", "sneeng", "sneft",
	"sneg", "snek", "sneld", "snem", "sneng", "snerp", "snes", "sneth",
	"sneyd", "sniaib", "snieast", "snift", "sniirp", "snim", "snin", "snioze",
	"snird", "snist", "snit", "sniup", "snix", "snize", "snoart", "snock",
	"snod", "snog", "snold", "snont", "snoop", "snorn", "snosh", "snot",
	"snoun", "snowt", "snoyft", "snub", "snud", "snuld", "snurd", "snut",
	"snuze", "soack", "soag", "soak", "soald", "soank", "soarn", "soast",
	"soft", "sog", "solk", "son", "sond", "sonk", "sook", "soold",
	"soond", "soort", "sooze", "sorn", "sosp", "sot", "soth", "souck",
	"souk", "sould", "soung", "soup", "sourp", "sousk", "sout", "sowb",
	"sowd", "sowft", "sowg", "sowld", "sowm", "sownd", "sowrp", "sows",
	"sowx", "sowze", "soy", "soyd", "soyl", "soym", "soynd", "soyrn",
	"soys", "soyt", "soyze", "spack", "spaft", "spaing", "spak", "spalt",
	"spang", "spap", "spart", "spasp", "spayck", "spe", "speant", "speb",
	"speern", "spek", "spelt", "spend", "speylt", "spib", "spick", "spid",
	"spift", "spik", "spilk", "sping", "spirp", "spisk", "spoack", "spol",
	"spon", "spoo", "spork", "sposp", "spot", "spouong", "spowp", "spoyrk",
	"spu", "spuck", "spug", "spuk", "spult", "spunk", "spur", "spus",
	"spuze", "sta", "stack", "stad", "stag", "staid", "stalk", "stand",
	"star", "staylt", "steaowk", "steeink", "stek", "stell", "stenk", "sterp",
	"stes", "steth", "stey", "stick", "stil", "stim", "stink", "stirn",
	"stist", "stit", "stoall", "stol", "stonk", "stoost", "stort", "stost",
	"stot", "stoun", "stowst", "stox", "stoylk", "stoze", "stuck", "stud",
	"stult", "stunt", "sturd", "stusk", "stux", "stuze", "sub", "sug",
	"suld", "sum", "sun", "surd", "surk", "swaaylt", "swack", "swad",
	"swaearp", "swaft", "swag", "swaisp", "swalk", "swaoaze", "swar", "swash",
	"swat", "swaub", "swax", "swayze", "swe", "sweayg", "sweck", "swed",
	"sweeys", "sweft", "swein", "swelk", "sweng", "sweob", "swer", "swesk",
	"sweth", "sweurd", "swey", "sweze", "swi", "swick", "swik", "swil",
	"swim", "swint", "swip", "swirp", "swish", "swit", "swoas", "swob",
	"swock", "swold", "swond", "swooulk", "swork", "swosk", "swoth", "swourp",
	"swowng", "swoyld", "swub", "swuft", "swuk", "swul", "swum", "swup",
	"swurd", "swusk", "swut", "swux", "tab", "tai", "taick", "taig",
	"taik", "taild", "taim", "tain", "tairt", "taisk", "taix", "tak",
	"talk", "tant", "tap", "tark", "tarp", "tash", "task", "tay",
	"tayb", "tayd", "taylk", "taynk", "tayrn", "tayst", "tayth", "tayze",
	"teaft", "teal", "tean", "teap", "teas", "teath", "teaze", "teb",
	"ted", "teeb", "teeck", "teed", "teeft", "teeg", "teek", "teel",
	"teem", "teenk", "teern", "teesp", "teex", "tek", "tel", "telt",
	"tem", "tep", "terk", "tern", "tesh", "tesp", "test", "teth",
	"tex", "teyb", "teym", "teynd", "teyp", "teyr", "teyx", "teyze",
	"tha", "thab", "thack", "thad", "thair", "thak", "thalt", "tham",
	"thang", "thap", "thar", "thast", "thath", "thax", "thaysh", "thaze",
	"thearn", "theep", "theg", "thek", "thel", "them", "thep", "therk",
	"thesh", "thex", "theyr", "thi", "thick", "thift", "thig", "thil",
	"thim", "thind", "thir", "thit", "tho", "thoalk", "thog", "tholk",
	"thom", "thont", "thooead", "thor", "thosp", "thot", "thouft", "thowlk",
	"thoyd", "thoze", "thuft", "thulk", "thunt", "thurp", "thus", "thut",
	"thux", "tick", "tid", "tilk", "tim", "tind", "tirk", "tith",
	"tix", "tize", "toa", "toab", "toaft", "toag", "toak", "toald",
	"toam", "toan", "toarn", "tock", "toft", "tok", "tolk", "tom",
	"tond", "tong", "toock", "toond", "toosh", "tor", "tord", "tork",
	"tot", "toth", "touad", "touck", "toueat", "touisp", "tould", "toun",
	"touork", "tourp", "tousk", "touuze", "toux", "towb", "towg", "towll",
	"townt", "towp", "towrn", "towt", "towze", "tox", "toyk", "toyll",
	"toym", "toynd", "toyp", "toyrn", "toysk", "toyze", "trab", "track",
	"traft", "traize", "trall", "trang", "trap", "trarp", "tras", "trat",
	"trax", "trayd", "tre", "treand", "treeze", "trem", "trern", "tresh",
	"treth", "treyth", "trick", "trift", "trilk", "trin", "trird", "trisp",
	"trize", "troa", "trob", "troll", "trom", "tron", "trood", "trorn",
	"trosh", "trounk", "trowt", "troyx", "troze", "truaynd", "truer", "truft",
	"trug", "truink", "truk", "trull", "trum", "trunk", "truoysk", "trurd",
	"trusk", "truuck", "tud", "tulk", "tull", "tum", "tusp", "tust",
	"tuze", "vack", "vaft", "vag", "vaick", "vaid", "vaig", "vailk",
	"vain", "vairt", "vaisp", "vait", "vak", "vald", "valk", "vam",
	"vap", "vark", "varn", "vas", "vast", "vat", "vath", "vayg",
	"vayk", "vayld", "vaynk", "vayrt", "vayt", "vayze", "vaze", "vea",
	"veab", "vead", "veag", "veak", "veall", "vean", "vearn", "veasp",
	"veat", "veaze", "veck", "ved", "veed", "veem", "veend", "veerp",
	"veest", "veet", "veeze", "veg", "vek", "velk", "vem", "verp",
	"vert", "vesk", "vest", "vex", "vey", "veyarp", "veyb", "veyd",
	"veyeyng", "veyft", "veyg", "veyith", "veyk", "veyl", "veyng", "veyout",
	"veyp", "veyrp", "veysh", "veyth", "veyur", "veze", "vib", "vick",
	"vil", "vild", "vilk", "vin", "vink", "virt", "vis", "voa",
	"voad", "voag", "voalt", "voart", "voash", "vod", "voft", "vol",
	"volk", "voll", "vong", "vonk", "voob", "vood", "vooft", "voog",
	"voold", "voon", "voop", "voorn", "voot", "vop", "vor", "vork",
	"vorn", "vos", "vosh", "vosp", "vost", "vot", "vouck", "voud",
	"vouft", "vouk", "voult", "voum", "vounk", "voup", "vourk", "voush",
	"vowft", "vowl", "vownt", "vowrt", "vowsk", "vowx", "voyaix", "voyeze",
	"voyft", "voyis", "voyk", "voyld", "voym", "voyot", "voyrd", "voyst",
	"voyunt", "voyx", "voyze", "voze", "vug", "vuk", "vulk", "vund",
	"vung", "vup", "vurd", "vurn", "vust", "vut", "vuth", "vux",
	"waick", "wailk", "waim", "waink", "wairk", "waisk", "wait", "waix",
	"wak", "wal", "wald", "wall", "wand", "wang", "warn", "warp",
	"wart", "was", "wash", "wasp", "wast", "wayb", "wayck", "wayg",
	"wayk", "wayld", "waynt", "wayrn", "waysh", "wayt", "wayze", "waze",
	"weab", "wead", "weal", "weand", "weard", "weasp", "weax", "web",
	"weck", "wee", "weell", "weend", "weern", "wees", "wek", "welt",
	"wen", "wer", "werd", "werk", "wes", "wesk", "weth", "wex",
	"wey", "weyft", "weyg", "weyl", "weyng", "weyr", "weysp", "weyt",
	"weyx", "whack", "whad", "whag", "whairt", "whal", "whart", "whast",
	"whath", "whax", "whayl", "wheaft", "whed", "wheep", "whell", "wheng",
	"wherp", "whes", "wheynk", "whift", "whig", "whill", "whind", "whird",
	"whis", "whit", "whize", "whoarp", "whock", "whod", "wholk", "whonk",
	"whoop", "whork", "whosh", "whot", "whoub", "whowsk", "whoyll", "whug",
	"whuld", "whum", "whun", "whur", "whusp", "whuth", "wib", "wid",
	"wig", "will", "wint", "wip", "wirn", "wirp", "wish", "wisk",
	"wisp", "with", "wix", "woag", "woald", "woan", "woard", "woash",
	"woath", "woaze", "wob", "woft", "wol", "wold", "woll", "won",
	"wond", "wong", "wooaize", "wood", "wooeng", "wooft", "wooing", "wook",
	"woolt", "woom", "woond", "wooost", "woork", "woosp", "wooulk", "wor",
	"work", "worn", "worp", "wort", "wosh", "wosp", "woth", "wouck",
	"woull", "woum", "woung", "wourp", "woush", "wow", "wowain", "wowck",
	"wowd", "woweart", "wowg", "wowing", "wowlt", "wownd", "wowousk", "wowrt",
	"wowsp", "wowth", "wowult", "wowx", "wox", "woyck", "woyft", "woyk",
	"woynd", "woyrn", "woys", "woyze", "woze", "wub", "wuck", "wuft",
	"wuk", "wulk", "wull", "wunt", "wur", "wurk", "wusk", "wust",
	"wut", "wuth", "wux", "wuze", "yab", "yack", "yaft", "yai",
	"yaib", "yaid", "yaig", "yaild", "yaim", "yain", "yair", "yaish",
	"yaith", "yaix", "yall", "yalt", "yan", "yand", "yar", "yark",
	"yask", "yast", "yax", "yayd", "yayld", "yaynk", "yayrt", "yaysk",
	"yayt", "yayze", "yaze", "yea", "yeab", "yeack", "yeam", "yeang",
	"yeap", "yeard", "yeask", "yeax", "yeeb", "yeed", "yeek", "yeeld",
	"yeem", "yeend", "yeer", "yeesp", "yeet", "yeft", "yeg", "yek",
	"yelk", "yell", "yenk", "yent", "yep", "yesh", "yesk", "yet",
	"yeth", "yex", "yeyft", "yeylk", "yeym", "yeyng", "yeyrt", "yeysp",
	"yeyt", "yeyx", "yig", "yil", "yild", "yill", "yim", "yind",
	"ying", "yip", "yir", "yirn", "yis", "yish", "yisk", "yisp",
	"yist", "yoa", "yoad", "yoaft", "yoall", "yoang", "yoart", "yoash",
	"yoath", "yog", "yol", "yolk", "yolt", "yom", "yong", "yoob",
	"yool", "yoort", "yoos", "yoot", "yorn", "yosh", "yosk", "yot",
	"youb", "youd", "youg", "yoult", "yount", "youp", "yourt", "yousp",
	"youth", "yow", "yowaind", "yowb", "yoweend", "yowft", "yowg", "yowig",
	"yowk", "yowl", "yowm", "yownt", "yowoar", "yowp", "yowrk", "yowsp",
	"yowurk", "yowze", "yox", "yoyb", "yoyck", "yoyg", "yoyk", "yoylt",
	"yoyrt", "yoysk", "yoyze", "yub", "yud", "yug", "yuk", "yul",
	"yuld", "yult", "yunk", "yurd", "yut", "zag", "zaid", "zailk",
	"zaim", "zaind", "zair", "zaisk", "zalk", "zar", "zart", "zas",
	"zash", "zask", "zay", "zayck", "zayft", "zayg", "zayk", "zaynd",
	"zayp", "zayrt", "zayst", "zayth", "zead", "zeaft", "zeag", "zeaid",
	"zealt", "zeap", "zeart", "zeasp", "zeax", "zeayk", "zeb", "zeck",
	"zed", "zee", "zeead", "zeeb", "zeeen", "zeeft", "zeeg", "zeelk",
	"zeem", "zeen", "zeert", "zeesp", "zeeyrk", "zeeze", "zeib", "zeift",
	"zeig", "zeild", "zeint", "zeirk", "zeish", "zeith", "zeize", "zek",
	"zelk", "zelt", "zem", "zen", "zenk", "zeoasp", "zeod", "zeoft",
	"zeok", "zeold", "zeonk", "zeoork", "zeort", "zeosh", "zeoth", "zeouk",
	"zeowrn", "zeox", "zeoyt", "zep", "zer", "zerd", "zern", "zert",
	"zesh", "zesp", "zest", "zeug", "zeuld", "zeunk", "zeurn", "zeush",
	"zeuze", "zex", "zey", "zeyb", "zeyd", "zeyg", "zeylt", "zeynd",
	"zeyr", "zeyt", "zeyx", "zik", "zil", "zild", "zill", "zin",
	"zip", "zirn", "zirp", "zis", "zize", "zoack", "zoag", "zoang",
	"zoark", "zoast", "zoat", "zoaze", "zod", "zol", "zoll", "zom",
	"zond", "zonk", "zoo", "zooft", "zook", "zool", "zoom", "zoont",
	"zoorn", "zoosk", "zoot", "zooze", "zord", "zorn", "zorp", "zort",
	"zos", "zosh", "zosk", "zosp", "zot", "zou", "zouck", "zoud",
	"zouft", "zoull", "zounk", "zour", "zousk", "zoux", "zowb", "zowft",
	"zowg", "zowlk", "zowm", "zowng", "zowr", "zowsp", "zowze", "zox",
	"zoyg", "zoyk", "zoyld", "zoyn", "zoyr", "zoyt", "zuld", "zulk",
	"zum", "zun", "zund", "zunk", "zurp", "zus", "zusk", "zusp",
}
